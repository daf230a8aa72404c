package schedule

import (
	"time"

	"pawcare/models"
)

// DefaultHorizonDays bounds the forward search for the next free date.
const DefaultHorizonDays = 30

// DateHorizon builds the ordered list of candidate dates starting today,
// each carrying its ISO date and local weekday name.
func DateHorizon(now time.Time, days int) []models.CandidateDate {
	if days <= 0 {
		days = DefaultHorizonDays
	}
	dates := make([]models.CandidateDate, days)
	for i := 0; i < days; i++ {
		dt := now.AddDate(0, 0, i)
		display := dt.Format("Jan 2")
		if i == 0 {
			display = "Today"
		}
		dates[i] = models.CandidateDate{
			Display: display,
			ISODate: dt.Format("2006-01-02"),
			DayName: dt.Weekday().String(),
		}
	}
	return dates
}

// FindNext scans forward from the date after fromDisplay and returns the
// first candidate with free capacity. A nil result means every date in the
// horizon is fully booked, which is a valid answer and not an error.
func FindNext(svc models.Service, fromDisplay string, dates []models.CandidateDate, now time.Time) *models.NextAvailability {
	from := -1
	for i, d := range dates {
		if d.Display == fromDisplay {
			from = i
			break
		}
	}

	for i := from + 1; i < len(dates); i++ {
		slots := FreeSlots(svc, dates[i].ISODate, dates[i].DayName, now)
		if len(slots) > 0 {
			return &models.NextAvailability{
				Date:  dates[i],
				Slots: Bucket(slots),
			}
		}
	}
	return nil
}
