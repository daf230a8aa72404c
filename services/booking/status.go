package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "pawcare/database/repository/appointment"
	"pawcare/models"
	"pawcare/services/schedule"

	"go.uber.org/zap"
)

// StartAppointment moves a booked appointment to in-progress, gated on the
// slot window being open right now.
func (e *DefaultBookingEngine) StartAppointment(ctx context.Context, providerID, appointmentID string) (*models.Appointment, error) {
	appt, err := e.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if appt.ProviderID != providerID {
		return nil, NotProviderError{AppointmentID: appointmentID}
	}

	if err := schedule.Start(appt, e.now()); err != nil {
		return nil, err
	}
	if err := e.ApptRepo.UpdateStatus(ctx, appt, models.AppointmentBooked); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			return nil, schedule.TransitionError{From: models.AppointmentBooked, To: models.AppointmentInProgress, Reason: "appointment is no longer booked"}
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	zap.L().Info("appointment started", zap.String("appointmentID", appt.ID))
	return appt, nil
}

// CompleteAppointment moves an in-progress appointment to completed. The
// service's delivery method decides whether early completion is allowed.
func (e *DefaultBookingEngine) CompleteAppointment(ctx context.Context, providerID, appointmentID string) (*models.Appointment, error) {
	appt, err := e.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if appt.ProviderID != providerID {
		return nil, NotProviderError{AppointmentID: appointmentID}
	}

	svc, err := e.ServiceRepo.GetByID(ctx, appt.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	if err := schedule.Complete(appt, svc.DeliveryMethod, e.now()); err != nil {
		return nil, err
	}
	if err := e.ApptRepo.UpdateStatus(ctx, appt, models.AppointmentInProgress); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			return nil, schedule.TransitionError{From: models.AppointmentInProgress, To: models.AppointmentCompleted, Reason: "appointment is no longer in progress"}
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	zap.L().Info("appointment completed", zap.String("appointmentID", appt.ID))
	return appt, nil
}

func (e *DefaultBookingEngine) ProviderAppointments(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return e.ApptRepo.GetByProvider(ctx, providerID)
}

func (e *DefaultBookingEngine) ClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return e.ApptRepo.GetByClient(ctx, clientID)
}
