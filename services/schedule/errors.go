package schedule

import "fmt"

// ValidationError indicates a requested slot duration cannot fit the
// declared working window. MaxMinutes is the largest duration that would
// fit, surfaced to the provider as-is.
type ValidationError struct {
	MaxMinutes int
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("maximum duration is %d minutes for that range", e.MaxMinutes)
}

// FormatError indicates an unparsable clock or date string.
type FormatError struct {
	Input string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("unparsable time value %q", e.Input)
}

// TransitionError indicates a disallowed appointment status transition.
type TransitionError struct {
	From   string
	To     string
	Reason string
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot move appointment from %q to %q: %s", e.From, e.To, e.Reason)
}
