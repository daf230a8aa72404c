package serviceRepo

import (
	"context"
	"errors"

	"pawcare/models"
)

// ErrSlotConflict is returned when a compare-and-set on a slot's status
// finds the slot no longer in the expected state. Callers treat it as
// "someone else got there first" and re-query availability.
var ErrSlotConflict = errors.New("slot status changed concurrently")

// ServiceRepository defines persistence for provider service offerings and
// their embedded availability.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id string) error

	// ReplaceAvailability swaps the whole availability array, the unit the
	// scheduling engine produces and consumes.
	ReplaceAvailability(ctx context.Context, serviceID string, avail []models.DayAvailability) error

	// SetSlotStatus atomically transitions one slot's status, matching only
	// if the slot is still in the from state.
	SetSlotStatus(ctx context.Context, serviceID, day, slotID, from, to string) error
}
