package booking

import (
	"context"
	"fmt"

	"pawcare/models"
	"pawcare/services/schedule"
)

// FreeSlotsForDate returns the bookable slots for a display date ("Today",
// "Sep 3"). When the date has no capacity the response carries the next
// available date in the horizon instead, so the screen can offer it.
func (e *DefaultBookingEngine) FreeSlotsForDate(ctx context.Context, serviceID, display string) (*models.FreeSlotsResponse, error) {
	svc, err := e.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	now := e.now()
	dates := schedule.DateHorizon(now, e.HorizonDays)
	candidate, ok := findDate(dates, display)
	if !ok {
		return nil, UnknownDateError{Display: display}
	}

	free := schedule.FreeSlots(*svc, candidate.ISODate, candidate.DayName, now)
	resp := &models.FreeSlotsResponse{
		Date:    candidate.ISODate,
		DayName: candidate.DayName,
		Slots:   schedule.Bucket(free),
	}
	if resp.Slots.Empty() {
		resp.Next = schedule.FindNext(*svc, display, dates, now)
	}
	return resp, nil
}

// NextAvailable scans forward from the date after fromDisplay. A nil result
// means the provider is fully booked for the whole horizon.
func (e *DefaultBookingEngine) NextAvailable(ctx context.Context, serviceID, fromDisplay string) (*models.NextAvailability, error) {
	svc, err := e.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	now := e.now()
	dates := schedule.DateHorizon(now, e.HorizonDays)
	return schedule.FindNext(*svc, fromDisplay, dates, now), nil
}

func findDate(dates []models.CandidateDate, display string) (models.CandidateDate, bool) {
	for _, d := range dates {
		if d.Display == display || d.ISODate == display {
			return d, true
		}
	}
	return models.CandidateDate{}, false
}
