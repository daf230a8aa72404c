package schedule

import (
	"testing"
	"time"

	"pawcare/models"
)

func bookedAppt() models.Appointment {
	return models.Appointment{
		ID:         "appt-1",
		ServiceID:  "svc-1",
		ProviderID: "prov-1",
		Date:       "2024-01-01",
		Day:        "Monday",
		Slot:       models.Slot{ID: "s1", StartTime: "2:00 PM", EndTime: "3:00 PM"},
		Status:     models.AppointmentBooked,
	}
}

func TestStart_WithinWindow(t *testing.T) {
	appt := bookedAppt()
	now := time.Date(2024, 1, 1, 14, 10, 0, 0, time.Local)
	if err := Start(&appt, now); err != nil {
		t.Fatal(err)
	}
	if appt.Status != models.AppointmentInProgress {
		t.Errorf("status = %s", appt.Status)
	}
	if appt.StartedAt == nil || !appt.StartedAt.Equal(now) {
		t.Errorf("startedAt = %v", appt.StartedAt)
	}
}

func TestStart_OutsideWindow(t *testing.T) {
	for _, now := range []time.Time{
		time.Date(2024, 1, 1, 13, 59, 0, 0, time.Local),
		time.Date(2024, 1, 1, 15, 1, 0, 0, time.Local),
	} {
		appt := bookedAppt()
		if err := Start(&appt, now); err == nil {
			t.Errorf("expected error starting at %s", now)
		}
		if appt.Status != models.AppointmentBooked {
			t.Errorf("status mutated on failed transition: %s", appt.Status)
		}
	}
}

func TestStart_RequiresBooked(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 10, 0, 0, time.Local)
	for _, status := range []string{
		models.AppointmentPending,
		models.AppointmentInProgress,
		models.AppointmentCompleted,
	} {
		appt := bookedAppt()
		appt.Status = status
		if err := Start(&appt, now); err == nil {
			t.Errorf("start allowed from %q", status)
		}
	}
}

func TestComplete_ClinicMayFinishEarly(t *testing.T) {
	appt := bookedAppt()
	appt.Status = models.AppointmentInProgress
	now := time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local) // before slot end
	if err := Complete(&appt, models.DeliveryInClinic, now); err != nil {
		t.Fatal(err)
	}
	if appt.Status != models.AppointmentCompleted || appt.CompletedAt == nil {
		t.Errorf("appt = %+v", appt)
	}
}

func TestComplete_HomeVisitWaitsForSlotEnd(t *testing.T) {
	appt := bookedAppt()
	appt.Status = models.AppointmentInProgress

	early := time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local)
	if err := Complete(&appt, models.DeliveryHomeVisit, early); err == nil {
		t.Fatal("home visit completed before slot end")
	}

	done := time.Date(2024, 1, 1, 15, 0, 0, 0, time.Local)
	if err := Complete(&appt, models.DeliveryHomeVisit, done); err != nil {
		t.Fatal(err)
	}
}

func TestComplete_NoSkippingStates(t *testing.T) {
	appt := bookedAppt() // still booked, never started
	now := time.Date(2024, 1, 1, 15, 30, 0, 0, time.Local)
	if err := Complete(&appt, models.DeliveryInClinic, now); err == nil {
		t.Fatal("completed straight from booked")
	}
}

func TestSlotWindow_Overnight(t *testing.T) {
	appt := bookedAppt()
	appt.Slot = models.Slot{StartTime: "11:00 PM", EndTime: "1:00 AM"}
	start, end, err := SlotWindow(appt)
	if err != nil {
		t.Fatal(err)
	}
	if got := end.Sub(start); got != 2*time.Hour {
		t.Errorf("window length = %s, want 2h", got)
	}
}
