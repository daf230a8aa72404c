package models

// AddAvailabilityRequest is the payload for declaring working windows.
// The same slot shape is generated once and copied onto each selected day.
type AddAvailabilityRequest struct {
	Days            []string      `json:"days" binding:"required"`
	StartTime       string        `json:"startTime" binding:"required"` // e.g. "9:00 AM"
	EndTime         string        `json:"endTime" binding:"required"`
	DurationMinutes int           `json:"durationMinutes" binding:"required"`
	BufferMinutes   int           `json:"bufferMinutes"`
	LocationInfo    *LocationInfo `json:"locationInfo,omitempty"`
}

// DayScheduleView is a weekday's merged display blocks plus the flattened
// slot list the blocks were built from.
type DayScheduleView struct {
	Day    string `json:"day"`
	Blocks []Slot `json:"blocks"`
	Slots  []Slot `json:"slots"`
}

// SlotBuckets groups a day's free slots for display.
type SlotBuckets struct {
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
	Evening   []Slot `json:"evening"`
}

// Empty reports whether no bucket holds a slot.
func (b SlotBuckets) Empty() bool {
	return len(b.Morning) == 0 && len(b.Afternoon) == 0 && len(b.Evening) == 0
}

// CandidateDate is one entry of the forward search horizon.
type CandidateDate struct {
	Display string `json:"display"` // "Today" or e.g. "Sep 3"
	ISODate string `json:"isoDate"`
	DayName string `json:"dayName"`
}

// NextAvailability is the first date with free capacity after a given date.
type NextAvailability struct {
	Date  CandidateDate `json:"date"`
	Slots SlotBuckets   `json:"slots"`
}

// FreeSlotsResponse is the booking screen's slot listing for one date.
type FreeSlotsResponse struct {
	Date    string      `json:"date"`
	DayName string      `json:"dayName"`
	Slots   SlotBuckets `json:"slots"`
	// Next is set only when the requested date has no free slots.
	Next *NextAvailability `json:"nextAvailability,omitempty"`
}
