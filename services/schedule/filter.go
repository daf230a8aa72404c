package schedule

import (
	"sort"
	"strings"
	"time"

	"pawcare/models"
)

// FreeSlots aggregates every availability entry of the service matching
// dayName (case-insensitive), flattens the slots and keeps only the ones a
// client can still book: not booked, not pending, and - when isoDate is the
// caller's current local date - not already started by now. Duplicate start
// times across overlapping entries are collapsed to the first occurrence.
// Slots with unparsable times are skipped rather than failing the query.
//
// Results are never cached: "today" answers change by the minute, so callers
// re-invoke this immediately before booking.
func FreeSlots(svc models.Service, isoDate, dayName string, now time.Time) []models.Slot {
	var flat []models.Slot
	for _, entry := range svc.Availability {
		if strings.EqualFold(entry.Day, dayName) {
			flat = append(flat, entry.Slots...)
		}
	}

	today := isoDate == now.Format("2006-01-02")

	free := make([]models.Slot, 0, len(flat))
	starts := make(map[string]bool)
	for _, s := range flat {
		if !s.Free() {
			continue
		}
		if today {
			startAt, err := CombineDateAndClock(isoDate, s.StartTime)
			if err != nil || !startAt.After(now) {
				continue
			}
		}
		if starts[s.StartTime] {
			continue
		}
		starts[s.StartTime] = true
		free = append(free, s)
	}

	sort.SliceStable(free, func(i, j int) bool {
		a, errA := ParseClock(free[i].StartTime)
		b, errB := ParseClock(free[j].StartTime)
		if errA != nil || errB != nil {
			return false
		}
		return a < b
	})
	return free
}

// Bucket groups free slots by start hour for display: morning before noon,
// afternoon before 17:00, evening from 17:00 on. Filtering and dedup happen
// in FreeSlots, before bucketing.
func Bucket(slots []models.Slot) models.SlotBuckets {
	buckets := models.SlotBuckets{
		Morning:   []models.Slot{},
		Afternoon: []models.Slot{},
		Evening:   []models.Slot{},
	}
	for _, s := range slots {
		start, err := ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		switch h := int(start) / 60; {
		case h < 12:
			buckets.Morning = append(buckets.Morning, s)
		case h < 17:
			buckets.Afternoon = append(buckets.Afternoon, s)
		default:
			buckets.Evening = append(buckets.Evening, s)
		}
	}
	return buckets
}
