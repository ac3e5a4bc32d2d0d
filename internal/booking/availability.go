package booking

import (
	"fmt"
	"time"

	"github.com/TallerTAW/court-reservation/internal/slot"
)

// BuildDaySlots lays out one raw availability record per whole opening hour of
// date. Hours overlapped by a booking that is not cancelled are reported as
// OCCUPIED, and hours that have already started at now as PAST. A partial
// opening hour at either end is not offered, and neither is an hour the
// location's clock skips.
func BuildDaySlots(date time.Time, openStr, closeStr string, price float64, bookings []*Booking, now time.Time) ([]slot.RawSlot, error) {
	openMin, err := parseClock(openStr)
	if err != nil {
		return nil, err
	}
	closeMin, err := parseClock(closeStr)
	if err != nil {
		return nil, err
	}
	// Opening hours are assumed to lie within a single day
	if openMin >= closeMin {
		return nil, ErrInvalidOpeningHours
	}

	firstHour := (openMin + 59) / 60
	endHour := closeMin / 60

	y, m, d := date.Date()
	loc := date.Location()

	slots := make([]slot.RawSlot, 0, max(endHour-firstHour, 0))
	for h := firstHour; h < endHour; h++ {
		start := time.Date(y, m, d, h, 0, 0, 0, loc)
		if start.Hour() != h {
			// Skipped by a DST jump
			continue
		}
		end := time.Date(y, m, d, h+1, 0, 0, 0, loc)

		available := true
		message := ""
		switch {
		case overlapsAny(bookings, start, end):
			available = false
			message = slot.MessageOccupied
		case !start.After(now):
			available = false
			message = MessagePast
		}

		slots = append(slots, slot.RawSlot{
			StartTime: fmt.Sprintf("%02d:00:00", h),
			EndTime:   fmt.Sprintf("%02d:00:00", h+1),
			Available: &available,
			Price:     price,
			Message:   message,
		})
	}

	return slots, nil
}

// overlapsAny checks (start < existingEnd) AND (end > existingStart) against
// every booking that still holds its hours.
func overlapsAny(bookings []*Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		if start.Before(b.EndTime) && end.After(b.StartTime) {
			return true
		}
	}
	return false
}

// parseClock returns minutes since midnight for HH:MM:SS or HH:MM.
// "24:00" is accepted as the end of the day.
func parseClock(s string) (int, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	if h, err := slot.ParseHour(s); err == nil && h == slot.HoursPerDay {
		return slot.HoursPerDay * 60, nil
	}
	return 0, ErrInvalidOpeningHours
}
