package models

import "time"

// Appointment statuses. An appointment starts as a pending payment hold,
// becomes booked on confirmation and then walks
// booked -> in-progress -> completed. Holds that lapse are expired.
const (
	AppointmentPending    = "pending"
	AppointmentBooked     = "booked"
	AppointmentInProgress = "in-progress"
	AppointmentCompleted  = "completed"
	AppointmentExpired    = "expired"
)

// Appointment references a concrete (date, slot) pair on a service.
// The slot is a copy taken at booking time; the authoritative slot status
// lives on the service's availability.
type Appointment struct {
	ID            string     `bson:"id" json:"id"`
	ServiceID     string     `bson:"serviceId" json:"serviceId"`
	ProviderID    string     `bson:"providerId" json:"providerId"`
	ClientID      string     `bson:"clientId" json:"clientId"`
	Date          string     `bson:"date" json:"date"` // ISO date, e.g. "2026-09-01"
	Day           string     `bson:"day" json:"day"`   // weekday name matching the availability entry
	Slot          Slot       `bson:"slot" json:"slot"`
	Status        string     `bson:"status" json:"status"`
	HoldExpiresAt time.Time  `bson:"holdExpiresAt,omitempty" json:"holdExpiresAt,omitempty"`
	StartedAt     *time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt   *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}

// HoldReleasePayload is the asynq task payload for expiring a payment hold.
type HoldReleasePayload struct {
	AppointmentID string `json:"appointmentId"`
}
