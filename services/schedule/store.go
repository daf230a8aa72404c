package schedule

import (
	"fmt"
	"strings"

	"pawcare/models"

	"github.com/google/uuid"
)

// AddAvailability generates slots for the given window once and appends one
// new DayAvailability entry per selected day. Each day receives its own copy
// of the generated slots with fresh IDs, since status is tracked per
// day+slot. The input slice is not mutated.
func AddAvailability(
	avail []models.DayAvailability,
	days []string,
	startClock, endClock string,
	durationMinutes, bufferMinutes int,
	loc *models.LocationInfo,
) ([]models.DayAvailability, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one day must be selected")
	}

	slots, err := Generate(startClock, endClock, durationMinutes, bufferMinutes)
	if err != nil {
		return nil, err
	}

	updated := make([]models.DayAvailability, len(avail), len(avail)+len(days))
	copy(updated, avail)
	for _, day := range days {
		daySlots := make([]models.Slot, len(slots))
		for i, s := range slots {
			s.ID = uuid.New().String()
			daySlots[i] = s
		}
		updated = append(updated, models.DayAvailability{
			Day:          day,
			Slots:        daySlots,
			LocationInfo: loc,
		})
	}
	return updated, nil
}

// DeleteSlotAt removes the slot at a flattened display index for a weekday.
// The display groups slots from every entry sharing that weekday into one
// chronological list, so the index is walked back to the originating entry
// in store order. An entry whose slot list empties is dropped entirely.
func DeleteSlotAt(avail []models.DayAvailability, day string, index int) ([]models.DayAvailability, error) {
	if index < 0 {
		return nil, fmt.Errorf("slot index %d out of range for %s", index, day)
	}

	updated := make([]models.DayAvailability, 0, len(avail))
	cursor := 0
	deleted := false
	for _, entry := range avail {
		// Day names match case-insensitively, same as the free-slot filter.
		if !strings.EqualFold(entry.Day, day) {
			updated = append(updated, entry)
			continue
		}

		if !deleted && index < cursor+len(entry.Slots) {
			deleted = true
			kept := make([]models.Slot, 0, len(entry.Slots)-1)
			for i, s := range entry.Slots {
				if cursor+i == index {
					continue
				}
				kept = append(kept, s)
			}
			cursor += len(entry.Slots)
			if len(kept) == 0 {
				continue
			}
			entry.Slots = kept
			updated = append(updated, entry)
			continue
		}

		cursor += len(entry.Slots)
		updated = append(updated, entry)
	}

	if !deleted {
		return nil, fmt.Errorf("slot index %d out of range for %s", index, day)
	}
	return updated, nil
}

// DeleteSlotByID removes the slot with the given ID wherever it lives.
// This is the stable-identifier path; DeleteSlotAt exists for display
// contracts that only know flattened positions.
func DeleteSlotByID(avail []models.DayAvailability, slotID string) ([]models.DayAvailability, error) {
	updated := make([]models.DayAvailability, 0, len(avail))
	deleted := false
	for _, entry := range avail {
		if deleted {
			updated = append(updated, entry)
			continue
		}

		kept := make([]models.Slot, 0, len(entry.Slots))
		for _, s := range entry.Slots {
			if s.ID == slotID {
				deleted = true
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			continue
		}
		entry.Slots = kept
		updated = append(updated, entry)
	}

	if !deleted {
		return nil, fmt.Errorf("slot %s not found", slotID)
	}
	return updated, nil
}
