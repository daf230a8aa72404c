package provider

import (
	"context"
	"fmt"

	serviceRepo "pawcare/database/repository/service"
	"pawcare/models"
)

// ProviderService manages a provider's service offerings and their declared
// availability. All mutations are ownership-checked: a service is only ever
// changed by the provider who owns it.
type ProviderService interface {
	CreateService(ctx context.Context, providerID string, svc models.Service) (*models.Service, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, providerID string) ([]models.Service, error)
	DeleteService(ctx context.Context, providerID, serviceID string) error

	AddAvailability(ctx context.Context, providerID, serviceID string, req models.AddAvailabilityRequest) (*models.Service, error)
	DeleteSlotAt(ctx context.Context, providerID, serviceID, day string, index int) (*models.Service, error)
	DeleteSlotByID(ctx context.Context, providerID, serviceID, slotID string) (*models.Service, error)
	DaySchedule(ctx context.Context, serviceID string) ([]models.DayScheduleView, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo serviceRepo.ServiceRepository
}

func NewDefaultProviderService(repo serviceRepo.ServiceRepository) (*DefaultProviderService, error) {
	if repo == nil {
		return nil, fmt.Errorf("provider service initialization error: repository is nil")
	}
	return &DefaultProviderService{Repo: repo}, nil
}
