package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "pawcare/database/repository/appointment"
	serviceRepo "pawcare/database/repository/service"
	"pawcare/models"
	"pawcare/services/schedule"
	"pawcare/services/tasks"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Book places a payment hold on a slot: availability is re-queried at call
// time (never from a cache), the slot's status is compare-and-set from free
// to pending, and a pending appointment is created with a hold deadline.
// A lapsed hold is released by the hold-expiry worker.
func (e *DefaultBookingEngine) Book(ctx context.Context, serviceID, clientID, isoDate, slotID string) (*models.Appointment, error) {
	svc, err := e.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	now := e.now()
	day, err := weekdayOf(isoDate)
	if err != nil {
		return nil, err
	}

	var slot *models.Slot
	for _, s := range schedule.FreeSlots(*svc, isoDate, day, now) {
		if s.ID == slotID {
			s := s
			slot = &s
			break
		}
	}
	if slot == nil {
		return nil, SlotTakenError{SlotID: slotID}
	}

	// The entry day name is stored as declared by the provider; match the
	// slot's entry rather than assuming the canonical weekday casing.
	entryDay := day
	for _, entry := range svc.Availability {
		for _, s := range entry.Slots {
			if s.ID == slotID {
				entryDay = entry.Day
			}
		}
	}

	err = e.ServiceRepo.SetSlotStatus(ctx, serviceID, entryDay, slotID, models.SlotStatusFree, models.SlotStatusPending)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrSlotConflict) {
			return nil, SlotTakenError{SlotID: slotID}
		}
		return nil, fmt.Errorf("failed to hold slot: %w", err)
	}

	slotCopy := *slot
	slotCopy.Status = models.SlotStatusPending
	appt := &models.Appointment{
		ServiceID:     serviceID,
		ProviderID:    svc.ProviderID,
		ClientID:      clientID,
		Date:          isoDate,
		Day:           entryDay,
		Slot:          slotCopy,
		Status:        models.AppointmentPending,
		HoldExpiresAt: now.Add(e.HoldWindow),
		CreatedAt:     now,
	}
	if err := e.ApptRepo.Create(ctx, appt); err != nil {
		// Roll the hold back so the slot is not stranded in pending.
		if rbErr := e.ServiceRepo.SetSlotStatus(ctx, serviceID, entryDay, slotID, models.SlotStatusPending, models.SlotStatusFree); rbErr != nil {
			zap.L().Error("failed to roll back slot hold",
				zap.String("slotID", slotID), zap.Error(rbErr))
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	e.enqueueHoldExpiry(appt)

	zap.L().Info("slot held",
		zap.String("appointmentID", appt.ID),
		zap.String("serviceID", serviceID),
		zap.String("date", isoDate),
		zap.String("slot", slotCopy.StartTime))
	return appt, nil
}

// ConfirmBooking finalizes a hold once the external payment collaborator
// reports success: the slot moves pending to booked and so does the
// appointment. Both transitions are compare-and-set; if either side lost
// its hold in the meantime (slot deleted, hold expired) the confirmation
// fails rather than booking a slot the hold no longer covers.
func (e *DefaultBookingEngine) ConfirmBooking(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := e.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if appt.Status != models.AppointmentPending {
		return nil, schedule.TransitionError{From: appt.Status, To: models.AppointmentBooked, Reason: "only pending holds can be confirmed"}
	}

	err = e.ServiceRepo.SetSlotStatus(ctx, appt.ServiceID, appt.Day, appt.Slot.ID, models.SlotStatusPending, models.SlotStatusBooked)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrSlotConflict) || errors.Is(err, mongo.ErrNoDocuments) {
			return nil, SlotTakenError{SlotID: appt.Slot.ID}
		}
		return nil, fmt.Errorf("failed to book slot: %w", err)
	}

	appt.Status = models.AppointmentBooked
	appt.Slot.Status = models.SlotStatusBooked
	if err := e.ApptRepo.UpdateStatus(ctx, appt, models.AppointmentPending); err != nil {
		// The hold was expired between the read above and this write; undo
		// the slot booking so the slot is offered again.
		if rbErr := e.ServiceRepo.SetSlotStatus(ctx, appt.ServiceID, appt.Day, appt.Slot.ID, models.SlotStatusBooked, models.SlotStatusFree); rbErr != nil {
			zap.L().Error("failed to roll back slot booking",
				zap.String("slotID", appt.Slot.ID), zap.Error(rbErr))
		}
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			return nil, schedule.TransitionError{From: models.AppointmentPending, To: models.AppointmentBooked, Reason: "hold is no longer pending"}
		}
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}

	zap.L().Info("booking confirmed", zap.String("appointmentID", appt.ID))
	return appt, nil
}

// ReleaseHold expires a pending appointment whose payment hold lapsed and
// frees its slot. Appointments that were confirmed in the meantime are left
// alone.
func (e *DefaultBookingEngine) ReleaseHold(ctx context.Context, appointmentID string) error {
	appt, err := e.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found: %w", err)
	}
	if appt.Status != models.AppointmentPending {
		return nil
	}
	if appt.HoldExpiresAt.After(e.now()) {
		return nil
	}

	if err := e.ApptRepo.MarkExpired(ctx, appt.ID); err != nil {
		return fmt.Errorf("failed to expire appointment: %w", err)
	}
	err = e.ServiceRepo.SetSlotStatus(ctx, appt.ServiceID, appt.Day, appt.Slot.ID, models.SlotStatusPending, models.SlotStatusFree)
	if err != nil && !errors.Is(err, serviceRepo.ErrSlotConflict) {
		return fmt.Errorf("failed to free slot: %w", err)
	}

	zap.L().Info("hold released",
		zap.String("appointmentID", appt.ID), zap.String("slotID", appt.Slot.ID))
	return nil
}

// SweepExpiredHolds is the backstop for holds whose expiry task was lost:
// it releases every pending appointment whose deadline has passed.
func (e *DefaultBookingEngine) SweepExpiredHolds(ctx context.Context) error {
	expired, err := e.ApptRepo.FindExpiredHolds(ctx, e.now())
	if err != nil {
		return fmt.Errorf("failed to list expired holds: %w", err)
	}
	for _, appt := range expired {
		if err := e.ReleaseHold(ctx, appt.ID); err != nil {
			zap.L().Error("failed to release expired hold",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	return nil
}

func (e *DefaultBookingEngine) enqueueHoldExpiry(appt *models.Appointment) {
	if e.AsynqClient == nil {
		return
	}
	task, opts, err := tasks.NewHoldExpireTask(models.HoldReleasePayload{AppointmentID: appt.ID}, appt.HoldExpiresAt)
	if err != nil {
		zap.L().Error("failed to build hold-expiry task", zap.Error(err))
		return
	}
	if _, err := e.AsynqClient.Enqueue(task, opts...); err != nil {
		zap.L().Error("failed to enqueue hold-expiry task",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func weekdayOf(isoDate string) (string, error) {
	day, err := time.ParseInLocation("2006-01-02", isoDate, time.Local)
	if err != nil {
		return "", schedule.FormatError{Input: isoDate}
	}
	return day.Weekday().String(), nil
}
