package provider

import (
	"context"
	"fmt"

	"pawcare/models"
	"pawcare/services/schedule"

	"go.uber.org/zap"
)

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// AddAvailability expands a day-range + time-range + duration request into
// slots and appends one availability entry per selected day. Home visits
// inherit the service's commute buffer when the request does not override it
// and must carry complete coverage details.
func (s *DefaultProviderService) AddAvailability(ctx context.Context, providerID, serviceID string, req models.AddAvailabilityRequest) (*models.Service, error) {
	svc, err := s.owned(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	buffer := req.BufferMinutes
	var loc *models.LocationInfo
	if svc.DeliveryMethod == models.DeliveryHomeVisit {
		if buffer == 0 {
			buffer = svc.CommuteBufferMinutes
		}
		loc = req.LocationInfo
		if err := validateLocation(loc); err != nil {
			return nil, err
		}
	}

	updated, err := schedule.AddAvailability(
		svc.Availability, req.Days,
		req.StartTime, req.EndTime,
		req.DurationMinutes, buffer, loc,
	)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.ReplaceAvailability(ctx, serviceID, updated); err != nil {
		return nil, fmt.Errorf("failed to persist availability: %w", err)
	}
	svc.Availability = updated

	zap.L().Info("availability added",
		zap.String("serviceID", serviceID),
		zap.Strings("days", req.Days),
		zap.Int("durationMinutes", req.DurationMinutes),
		zap.Int("bufferMinutes", buffer))
	return svc, nil
}

// DeleteSlotAt removes a slot by its flattened display position for a
// weekday (the display groups every entry of that weekday into one list).
func (s *DefaultProviderService) DeleteSlotAt(ctx context.Context, providerID, serviceID, day string, index int) (*models.Service, error) {
	svc, err := s.owned(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	updated, err := schedule.DeleteSlotAt(svc.Availability, day, index)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAvailability(ctx, serviceID, updated); err != nil {
		return nil, fmt.Errorf("failed to persist availability: %w", err)
	}
	svc.Availability = updated
	return svc, nil
}

// DeleteSlotByID removes a slot by its stable identifier.
func (s *DefaultProviderService) DeleteSlotByID(ctx context.Context, providerID, serviceID, slotID string) (*models.Service, error) {
	svc, err := s.owned(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	updated, err := schedule.DeleteSlotByID(svc.Availability, slotID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAvailability(ctx, serviceID, updated); err != nil {
		return nil, fmt.Errorf("failed to persist availability: %w", err)
	}
	svc.Availability = updated
	return svc, nil
}

// DaySchedule renders the provider's review view: per weekday, the flattened
// slot list in store order (the order flattened deletion indexes refer to)
// plus the merged display blocks.
func (s *DefaultProviderService) DaySchedule(ctx context.Context, serviceID string) ([]models.DayScheduleView, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	byDay := make(map[string][]models.Slot)
	for _, entry := range svc.Availability {
		byDay[entry.Day] = append(byDay[entry.Day], entry.Slots...)
	}

	views := make([]models.DayScheduleView, 0, len(byDay))
	for _, day := range weekdayOrder {
		slots, ok := byDay[day]
		if !ok {
			continue
		}
		blocks, err := schedule.Merge(slots)
		if err != nil {
			return nil, fmt.Errorf("failed to merge %s slots: %w", day, err)
		}
		views = append(views, models.DayScheduleView{Day: day, Blocks: blocks, Slots: slots})
	}
	return views, nil
}

func validateLocation(loc *models.LocationInfo) error {
	if loc == nil {
		return LocationError{Reason: "location info is required for home visits"}
	}
	switch loc.CoverageType {
	case "areas":
		if loc.Address == "" || loc.City == "" || len(loc.Areas) == 0 {
			return LocationError{Reason: "address, city and areas served are required"}
		}
	case "radius":
		if loc.ServiceRadius < 1 || loc.ServiceRadius > 50 {
			return LocationError{Reason: "service radius must be between 1-50 km"}
		}
	default:
		return LocationError{Reason: fmt.Sprintf("unknown coverage type %q", loc.CoverageType)}
	}
	return nil
}
