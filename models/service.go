package models

// Slot statuses as stored on a service's availability.
const (
	SlotStatusFree    = "free"
	SlotStatusPending = "pending"
	SlotStatusBooked  = "booked"
)

// Delivery methods a provider can offer a service through.
const (
	DeliveryInClinic  = "In-Clinic"
	DeliveryHomeVisit = "Home Visit"
	DeliveryVideo     = "Video Consultation"
)

// Slot is a single bookable time interval on a given weekday.
// Start and end are 12-hour clock strings (e.g. "9:00 AM"); an empty
// status means the slot is free.
type Slot struct {
	ID        string `bson:"id" json:"id"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	HasBuffer bool   `bson:"hasBuffer,omitempty" json:"hasBuffer,omitempty"`
}

// Free reports whether the slot can still be offered to a client.
func (s Slot) Free() bool {
	return s.Status != SlotStatusBooked && s.Status != SlotStatusPending
}

// LocationInfo carries home-visit coverage details for a day's slots.
type LocationInfo struct {
	Address       string   `bson:"address,omitempty" json:"address,omitempty"`
	City          string   `bson:"city,omitempty" json:"city,omitempty"`
	CoverageType  string   `bson:"coverageType,omitempty" json:"coverageType,omitempty"` // "radius" or "areas"
	ServiceRadius int      `bson:"serviceRadius,omitempty" json:"serviceRadius,omitempty"`
	Areas         []string `bson:"areas,omitempty" json:"areas,omitempty"`
}

// DayAvailability is one accumulation of slots for a weekday. The same
// weekday may appear in multiple entries; consumers aggregate all entries
// for a day before filtering or merging.
type DayAvailability struct {
	Day          string        `bson:"day" json:"day"`
	Slots        []Slot        `bson:"slots" json:"slots"`
	LocationInfo *LocationInfo `bson:"locationInfo,omitempty" json:"locationInfo,omitempty"`
}

// Service is a provider's bookable offering with its declared availability.
type Service struct {
	ID                   string            `bson:"id" json:"id"`
	ProviderID           string            `bson:"providerId" json:"providerId"`
	ProviderType         string            `bson:"providerType" json:"providerType"` // "vet", "sitter" or "groomer"
	Services             []string          `bson:"services" json:"services"`
	Description          string            `bson:"description,omitempty" json:"description,omitempty"`
	Price                float64           `bson:"price" json:"price"`
	DurationMinutes      int               `bson:"durationMinutes" json:"durationMinutes"`
	DeliveryMethod       string            `bson:"deliveryMethod" json:"deliveryMethod"`
	CommuteBufferMinutes int               `bson:"commuteBufferMinutes,omitempty" json:"commuteBufferMinutes,omitempty"` // home visits only
	Availability         []DayAvailability `bson:"availability" json:"availability"`
	IsActive             bool              `bson:"isActive" json:"isActive"`
}
