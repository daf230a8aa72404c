package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "pawcare/database/repository/appointment"
	serviceRepo "pawcare/database/repository/service"
	"pawcare/models"

	"github.com/hibiken/asynq"
)

// BookingService is the client-facing side of scheduling: free-slot queries,
// the forward availability search, slot holds and the appointment status
// machine.
type BookingService interface {
	FreeSlotsForDate(ctx context.Context, serviceID, display string) (*models.FreeSlotsResponse, error)
	NextAvailable(ctx context.Context, serviceID, fromDisplay string) (*models.NextAvailability, error)

	Book(ctx context.Context, serviceID, clientID, isoDate, slotID string) (*models.Appointment, error)
	ConfirmBooking(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ReleaseHold(ctx context.Context, appointmentID string) error
	SweepExpiredHolds(ctx context.Context) error

	StartAppointment(ctx context.Context, providerID, appointmentID string) (*models.Appointment, error)
	CompleteAppointment(ctx context.Context, providerID, appointmentID string) (*models.Appointment, error)

	ProviderAppointments(ctx context.Context, providerID string) ([]models.Appointment, error)
	ClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)
}

// DefaultBookingEngine is the production implementation. Now is injected so
// "today" filtering and status gating are deterministic under test; it is
// consulted on every call, never memoized.
type DefaultBookingEngine struct {
	ServiceRepo serviceRepo.ServiceRepository
	ApptRepo    appointmentRepo.AppointmentRepository
	AsynqClient *asynq.Client
	Now         func() time.Time
	HorizonDays int
	HoldWindow  time.Duration
}

func NewDefaultBookingEngine(
	svcRepo serviceRepo.ServiceRepository,
	apptRepo appointmentRepo.AppointmentRepository,
	asynqClient *asynq.Client,
	holdWindow time.Duration,
	horizonDays int,
) (*DefaultBookingEngine, error) {
	if svcRepo == nil || apptRepo == nil {
		return nil, fmt.Errorf("booking engine initialization error: one or more dependencies are nil")
	}
	return &DefaultBookingEngine{
		ServiceRepo: svcRepo,
		ApptRepo:    apptRepo,
		AsynqClient: asynqClient,
		Now:         time.Now,
		HorizonDays: horizonDays,
		HoldWindow:  holdWindow,
	}, nil
}

func (e *DefaultBookingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
