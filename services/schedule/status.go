package schedule

import (
	"time"

	"pawcare/models"
)

// SlotWindow resolves an appointment's slot into concrete local start and
// end instants. An end clock at or before the start is taken to wrap past
// midnight.
func SlotWindow(appt models.Appointment) (start, end time.Time, err error) {
	start, err = CombineDateAndClock(appt.Date, appt.Slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startMin, err := ParseClock(appt.Slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ParseClock(appt.Slot.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	end = start.Add(time.Duration(endMin-startMin) * time.Minute)
	return start, end, nil
}

// Start moves a booked appointment to in-progress. The transition is only
// permitted while now lies within the slot window; no state is skipped and
// no backward move exists.
func Start(appt *models.Appointment, now time.Time) error {
	if appt.Status != models.AppointmentBooked {
		return TransitionError{From: appt.Status, To: models.AppointmentInProgress, Reason: "only booked appointments can be started"}
	}
	start, end, err := SlotWindow(*appt)
	if err != nil {
		return err
	}
	if now.Before(start) || now.After(end) {
		return TransitionError{From: appt.Status, To: models.AppointmentInProgress, Reason: "slot window is not open"}
	}
	appt.Status = models.AppointmentInProgress
	t := now
	appt.StartedAt = &t
	return nil
}

// Complete moves an in-progress appointment to completed. Home visits must
// wait for the slot to elapse; clinic and video flows may complete early.
func Complete(appt *models.Appointment, deliveryMethod string, now time.Time) error {
	if appt.Status != models.AppointmentInProgress {
		return TransitionError{From: appt.Status, To: models.AppointmentCompleted, Reason: "only in-progress appointments can be completed"}
	}
	if deliveryMethod == models.DeliveryHomeVisit {
		_, end, err := SlotWindow(*appt)
		if err != nil {
			return err
		}
		if now.Before(end) {
			return TransitionError{From: appt.Status, To: models.AppointmentCompleted, Reason: "home visit slot has not elapsed"}
		}
	}
	appt.Status = models.AppointmentCompleted
	t := now
	appt.CompletedAt = &t
	return nil
}
