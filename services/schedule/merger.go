package schedule

import (
	"sort"

	"pawcare/models"
)

type interval struct {
	start TimeOfDay
	end   TimeOfDay
}

// Merge combines contiguous or overlapping slots into display blocks.
// The input is one weekday's aggregated slots in any order; the output is
// sorted, and carries only the block times, not slot IDs or statuses.
// Merging zero slots yields zero blocks.
func Merge(slots []models.Slot) ([]models.Slot, error) {
	if len(slots) == 0 {
		return []models.Slot{}, nil
	}

	intervals := make([]interval, 0, len(slots))
	for _, s := range slots {
		start, err := ParseClock(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(s.EndTime)
		if err != nil {
			return nil, err
		}
		if end <= start {
			end += minutesPerDay
		}
		intervals = append(intervals, interval{start: start, end: end})
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	merged := make([]interval, 0, len(intervals))
	current := intervals[0]
	for _, next := range intervals[1:] {
		if next.start <= current.end {
			if next.end > current.end {
				current.end = next.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	blocks := make([]models.Slot, len(merged))
	for i, b := range merged {
		blocks[i] = models.Slot{
			StartTime: b.start.FormatClock(),
			EndTime:   b.end.FormatClock(),
		}
	}
	return blocks, nil
}
