package provider

import (
	"context"
	"fmt"

	"pawcare/models"

	"go.uber.org/zap"
)

func (s *DefaultProviderService) CreateService(ctx context.Context, providerID string, svc models.Service) (*models.Service, error) {
	svc.ID = ""
	svc.ProviderID = providerID
	svc.IsActive = true

	switch svc.DeliveryMethod {
	case models.DeliveryInClinic, models.DeliveryHomeVisit, models.DeliveryVideo:
	default:
		return nil, fmt.Errorf("unknown delivery method %q", svc.DeliveryMethod)
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	if svc.DeliveryMethod != models.DeliveryHomeVisit {
		svc.CommuteBufferMinutes = 0
	}

	// Availability is declared through AddAvailability, never at creation.
	svc.Availability = nil

	if err := s.Repo.Create(ctx, &svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	zap.L().Info("service created",
		zap.String("serviceID", svc.ID), zap.String("providerID", providerID))
	return &svc, nil
}

func (s *DefaultProviderService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	return svc, nil
}

func (s *DefaultProviderService) ListServices(ctx context.Context, providerID string) ([]models.Service, error) {
	return s.Repo.GetByProvider(ctx, providerID)
}

// DeleteService removes the offering and, with it, every declared slot.
func (s *DefaultProviderService) DeleteService(ctx context.Context, providerID, serviceID string) error {
	if _, err := s.owned(ctx, providerID, serviceID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	zap.L().Info("service deleted",
		zap.String("serviceID", serviceID), zap.String("providerID", providerID))
	return nil
}

func (s *DefaultProviderService) owned(ctx context.Context, providerID, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if svc.ProviderID != providerID {
		return nil, OwnershipError{ProviderID: providerID, ServiceID: serviceID}
	}
	return svc, nil
}
