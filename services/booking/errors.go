package booking

import "fmt"

// SlotTakenError indicates a slot was no longer free when the booking hold
// was attempted. The client re-queries availability and picks again.
type SlotTakenError struct {
	SlotID string
}

func (e SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s is no longer available", e.SlotID)
}

// UnknownDateError indicates the requested display date is outside the
// search horizon.
type UnknownDateError struct {
	Display string
}

func (e UnknownDateError) Error() string {
	return fmt.Sprintf("date %q is not in the booking horizon", e.Display)
}

// NotProviderError indicates an appointment action by someone other than the
// appointment's provider.
type NotProviderError struct {
	AppointmentID string
}

func (e NotProviderError) Error() string {
	return fmt.Sprintf("not allowed to manage appointment %s", e.AppointmentID)
}
