package schedule

import (
	"testing"
	"time"

	"pawcare/models"
)

func sitterService(avail ...models.DayAvailability) models.Service {
	return models.Service{
		ID:              "svc-1",
		ProviderID:      "prov-1",
		ProviderType:    "sitter",
		DeliveryMethod:  models.DeliveryInClinic,
		DurationMinutes: 30,
		Availability:    avail,
		IsActive:        true,
	}
}

func TestFreeSlots_ExcludesBookedAndPending(t *testing.T) {
	svc := sitterService(models.DayAvailability{
		Day: "Monday",
		Slots: []models.Slot{
			{ID: "a", StartTime: "9:00 AM", EndTime: "9:30 AM"},
			{ID: "b", StartTime: "9:30 AM", EndTime: "10:00 AM", Status: models.SlotStatusBooked},
			{ID: "c", StartTime: "10:00 AM", EndTime: "10:30 AM", Status: models.SlotStatusPending},
		},
	})

	now := time.Date(2024, 1, 8, 8, 0, 0, 0, time.Local) // a Monday, but not the queried date
	free := FreeSlots(svc, "2024-01-15", "Monday", now)
	if len(free) != 1 || free[0].ID != "a" {
		t.Fatalf("expected only slot a, got %+v", free)
	}
}

func TestFreeSlots_ExcludesElapsedToday(t *testing.T) {
	svc := sitterService(models.DayAvailability{
		Day: "Monday",
		Slots: []models.Slot{
			{ID: "early", StartTime: "9:00 AM", EndTime: "9:30 AM"},
			{ID: "late", StartTime: "11:00 AM", EndTime: "11:30 AM"},
		},
	})

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	free := FreeSlots(svc, now.Format("2006-01-02"), "Monday", now)
	if len(free) != 1 || free[0].ID != "late" {
		t.Fatalf("expected only the 11:00 slot, got %+v", free)
	}

	// The same slots on a future date are all free.
	free = FreeSlots(svc, "2024-01-08", "Monday", now)
	if len(free) != 2 {
		t.Fatalf("expected both slots on a future date, got %d", len(free))
	}
}

func TestFreeSlots_AggregatesAndDedups(t *testing.T) {
	svc := sitterService(
		models.DayAvailability{Day: "monday", Slots: []models.Slot{
			{ID: "a", StartTime: "2:00 PM", EndTime: "2:30 PM"},
		}},
		models.DayAvailability{Day: "Monday", Slots: []models.Slot{
			{ID: "dup", StartTime: "2:00 PM", EndTime: "2:30 PM"},
			{ID: "b", StartTime: "9:00 AM", EndTime: "9:30 AM"},
		}},
	)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	free := FreeSlots(svc, "2024-01-08", "Monday", now)
	if len(free) != 2 {
		t.Fatalf("expected 2 slots after dedup, got %d", len(free))
	}
	// Sorted chronologically across entries, first occurrence wins the dedup.
	if free[0].ID != "b" || free[1].ID != "a" {
		t.Errorf("order/dedup wrong: %s, %s", free[0].ID, free[1].ID)
	}
}

func TestBucket(t *testing.T) {
	buckets := Bucket([]models.Slot{
		{StartTime: "9:00 AM", EndTime: "9:30 AM"},
		{StartTime: "11:59 AM", EndTime: "12:29 PM"},
		{StartTime: "12:00 PM", EndTime: "12:30 PM"},
		{StartTime: "4:30 PM", EndTime: "5:00 PM"},
		{StartTime: "5:00 PM", EndTime: "5:30 PM"},
	})
	if len(buckets.Morning) != 2 {
		t.Errorf("morning = %d, want 2", len(buckets.Morning))
	}
	if len(buckets.Afternoon) != 2 {
		t.Errorf("afternoon = %d, want 2", len(buckets.Afternoon))
	}
	if len(buckets.Evening) != 1 {
		t.Errorf("evening = %d, want 1", len(buckets.Evening))
	}
	if buckets.Empty() {
		t.Error("buckets reported empty")
	}
	if !Bucket(nil).Empty() {
		t.Error("empty input should yield empty buckets")
	}
}
