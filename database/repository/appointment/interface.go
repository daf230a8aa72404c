package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"pawcare/models"
)

// ErrStatusConflict is returned when a conditional status update finds the
// appointment no longer in the expected state, e.g. a confirm racing the
// hold-expiry worker.
var ErrStatusConflict = errors.New("appointment status changed concurrently")

// AppointmentRepository defines persistence for appointments and their
// status machine. Slot status on the owning service is managed by the
// service repository's compare-and-set, never from here.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Appointment, error)
	GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error)

	// UpdateStatus persists status plus the transition timestamps set by the
	// scheduling engine's state machine. Matching is conditional on the
	// appointment still being in the from state; ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, appt *models.Appointment, from string) error

	// FindExpiredHolds lists pending appointments whose payment hold lapsed
	// before now.
	FindExpiredHolds(ctx context.Context, now time.Time) ([]models.Appointment, error)

	// MarkExpired flips a pending appointment to expired; matching is
	// conditional on it still being pending.
	MarkExpired(ctx context.Context, id string) error
}
