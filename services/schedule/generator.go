package schedule

import (
	"fmt"

	"pawcare/models"

	"github.com/google/uuid"
)

// Generate tiles the window [startClock, endClock) with slots of
// durationMinutes, leaving bufferMinutes idle after each slot before the
// next may start. If the end is at or before the start the window is taken
// to cross midnight. A trailing slot that would overshoot the window is
// discarded. Each slot gets a fresh ID and HasBuffer is set when a non-zero
// buffer still fits between the slot's end and the window's end.
func Generate(startClock, endClock string, durationMinutes, bufferMinutes int) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	if bufferMinutes < 0 {
		return nil, fmt.Errorf("buffer must not be negative, got %d", bufferMinutes)
	}

	start, err := ParseClock(startClock)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return nil, err
	}
	if end <= start {
		end += minutesPerDay
	}

	if TimeOfDay(durationMinutes) > end-start {
		return nil, ValidationError{MaxMinutes: int(end - start)}
	}

	var slots []models.Slot
	seen := make(map[string]bool)
	for cur := start; cur < end; {
		slotEnd := cur + TimeOfDay(durationMinutes)
		if slotEnd > end {
			break
		}

		startStr := cur.FormatClock()
		if !seen[startStr] {
			seen[startStr] = true
			slots = append(slots, models.Slot{
				ID:        uuid.New().String(),
				StartTime: startStr,
				EndTime:   slotEnd.FormatClock(),
				HasBuffer: bufferMinutes > 0 && slotEnd+TimeOfDay(bufferMinutes) < end,
			})
		}

		cur = slotEnd + TimeOfDay(bufferMinutes)
	}
	return slots, nil
}
