package schedule

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a number of minutes since local midnight (0-1439).
type TimeOfDay int

const minutesPerDay = 1440

// ParseClock converts a 12-hour clock string such as "9:00 AM" into minutes
// since midnight. The meridiem token is case, space and dot tolerant
// ("9:00pm", "9:00 P.M."). 12 AM maps to 0 and 12 PM to 720.
func ParseClock(s string) (TimeOfDay, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, ".", "")

	var meridiem string
	switch {
	case strings.HasSuffix(norm, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(norm, "PM"):
		meridiem = "PM"
	default:
		return 0, FormatError{Input: s}
	}
	hm := strings.TrimSpace(strings.TrimSuffix(norm, meridiem))

	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, FormatError{Input: s}
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, FormatError{Input: s}
	}

	if meridiem == "PM" && h != 12 {
		h += 12
	}
	if meridiem == "AM" && h == 12 {
		h = 0
	}
	return TimeOfDay(h*60 + m), nil
}

// FormatClock is the inverse of ParseClock. Values outside a single day are
// normalized first, so minute 1500 formats as "1:00 AM".
func (t TimeOfDay) FormatClock() string {
	n := (int(t)%minutesPerDay + minutesPerDay) % minutesPerDay
	h := n / 60
	m := n % 60

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	hr := h % 12
	if hr == 0 {
		hr = 12
	}
	return fmt.Sprintf("%d:%02d %s", hr, m, meridiem)
}

// CombineDateAndClock builds the concrete local-time instant for a clock
// string on an ISO date. Used for comparing a slot's start against "now".
func CombineDateAndClock(isoDate, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", isoDate, time.Local)
	if err != nil {
		return time.Time{}, FormatError{Input: isoDate}
	}
	t, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(t) * time.Minute), nil
}
