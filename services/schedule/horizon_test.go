package schedule

import (
	"testing"
	"time"

	"pawcare/models"
)

func TestDateHorizon(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local) // a Monday
	dates := DateHorizon(now, 30)
	if len(dates) != 30 {
		t.Fatalf("expected 30 dates, got %d", len(dates))
	}
	if dates[0].Display != "Today" || dates[0].ISODate != "2024-01-01" || dates[0].DayName != "Monday" {
		t.Errorf("today entry wrong: %+v", dates[0])
	}
	if dates[1].Display != "Jan 2" || dates[1].DayName != "Tuesday" {
		t.Errorf("second entry wrong: %+v", dates[1])
	}
	if dates[29].ISODate != "2024-01-30" {
		t.Errorf("horizon end wrong: %+v", dates[29])
	}

	if got := len(DateHorizon(now, 0)); got != DefaultHorizonDays {
		t.Errorf("default horizon = %d, want %d", got, DefaultHorizonDays)
	}
}

func TestFindNext_SkipsEmptyDays(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local) // Monday
	dates := DateHorizon(now, 30)

	// Today's Monday slots are all booked; Tuesday and Wednesday have no
	// entries; Thursday (day 3) has one free slot.
	svc := sitterService(
		models.DayAvailability{Day: "Monday", Slots: []models.Slot{
			{ID: "m", StartTime: "9:00 AM", EndTime: "9:30 AM", Status: models.SlotStatusBooked},
		}},
		models.DayAvailability{Day: "Thursday", Slots: []models.Slot{
			{ID: "th", StartTime: "3:00 PM", EndTime: "3:30 PM"},
		}},
	)

	next := FindNext(svc, "Today", dates, now)
	if next == nil {
		t.Fatal("expected a next availability")
	}
	if next.Date.ISODate != "2024-01-04" || next.Date.DayName != "Thursday" {
		t.Errorf("next date = %+v, want Thursday 2024-01-04", next.Date)
	}
	if len(next.Slots.Afternoon) != 1 || next.Slots.Afternoon[0].ID != "th" {
		t.Errorf("next slots = %+v", next.Slots)
	}
}

func TestFindNext_Exhausted(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	dates := DateHorizon(now, 30)

	svc := sitterService(models.DayAvailability{Day: "Monday", Slots: []models.Slot{
		{ID: "m", StartTime: "9:00 AM", EndTime: "9:30 AM", Status: models.SlotStatusBooked},
	}})

	if next := FindNext(svc, "Today", dates, now); next != nil {
		t.Fatalf("expected nil for a fully booked horizon, got %+v", next)
	}

	// Unknown starting display scans the whole horizon rather than failing.
	if next := FindNext(svc, "not-a-date", dates, now); next != nil {
		t.Fatalf("expected nil, got %+v", next)
	}
}
