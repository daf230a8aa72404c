package provider

import "fmt"

// OwnershipError indicates a provider tried to mutate a service they do not
// own.
type OwnershipError struct {
	ProviderID string
	ServiceID  string
}

func (e OwnershipError) Error() string {
	return fmt.Sprintf("provider %s does not own service %s", e.ProviderID, e.ServiceID)
}

// LocationError indicates incomplete home-visit coverage details.
type LocationError struct {
	Reason string
}

func (e LocationError) Error() string {
	return "invalid home visit coverage: " + e.Reason
}
