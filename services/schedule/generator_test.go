package schedule

import (
	"errors"
	"testing"
)

func TestGenerate_TilesWindow(t *testing.T) {
	slots, err := Generate("9:00 AM", "12:00 PM", 30, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	for i, s := range slots {
		if s.ID == "" {
			t.Errorf("slot %d has no ID", i)
		}
		if s.HasBuffer {
			t.Errorf("slot %d has buffer flag without a buffer", i)
		}
	}
	// No gaps, no overlaps: each slot starts where the previous ended.
	for i := 1; i < len(slots); i++ {
		if slots[i].StartTime != slots[i-1].EndTime {
			t.Errorf("gap between %q and %q", slots[i-1].EndTime, slots[i].StartTime)
		}
	}
	if slots[0].StartTime != "9:00 AM" || slots[5].EndTime != "12:00 PM" {
		t.Errorf("window edges wrong: %q .. %q", slots[0].StartTime, slots[5].EndTime)
	}
}

func TestGenerate_Buffer(t *testing.T) {
	slots, err := Generate("9:00 AM", "12:00 PM", 30, 15)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct{ start, end string }{
		{"9:00 AM", "9:30 AM"},
		{"9:45 AM", "10:15 AM"},
		{"10:30 AM", "11:00 AM"},
		{"11:15 AM", "11:45 AM"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if slots[i].StartTime != w.start || slots[i].EndTime != w.end {
			t.Errorf("slot %d = %s-%s, want %s-%s", i, slots[i].StartTime, slots[i].EndTime, w.start, w.end)
		}
	}
	// The last slot's remaining buffer does not fit before the window end.
	for i, s := range slots {
		wantBuffer := i < len(slots)-1
		if s.HasBuffer != wantBuffer {
			t.Errorf("slot %d HasBuffer = %v, want %v", i, s.HasBuffer, wantBuffer)
		}
	}
}

func TestGenerate_DiscardsOvershootingTail(t *testing.T) {
	slots, err := Generate("9:00 AM", "10:45 AM", 30, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if slots[2].EndTime != "10:30 AM" {
		t.Errorf("last slot ends %q, want 10:30 AM", slots[2].EndTime)
	}
}

func TestGenerate_Overnight(t *testing.T) {
	slots, err := Generate("10:00 PM", "1:00 AM", 60, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if slots[1].EndTime != "12:00 AM" {
		t.Errorf("rollover slot ends %q, want 12:00 AM", slots[1].EndTime)
	}
	if slots[2].StartTime != "12:00 AM" || slots[2].EndTime != "1:00 AM" {
		t.Errorf("post-midnight slot = %s-%s", slots[2].StartTime, slots[2].EndTime)
	}
}

func TestGenerate_DurationTooLong(t *testing.T) {
	_, err := Generate("9:00 AM", "9:30 AM", 45, 0)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.MaxMinutes != 30 {
		t.Errorf("MaxMinutes = %d, want 30", verr.MaxMinutes)
	}
}

func TestGenerate_BadClock(t *testing.T) {
	_, err := Generate("nine", "12:00 PM", 30, 0)
	var ferr FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}
