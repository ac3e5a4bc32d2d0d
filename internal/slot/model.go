package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MessageOccupied is the status message the availability source attaches to
// hours that are taken, even when the record is nominally flagged available.
const MessageOccupied = "OCCUPIED"

// HoursPerDay bounds every hour value handled by the engine. An end boundary
// may equal HoursPerDay ("24:00"), a start never does.
const HoursPerDay = 24

var ErrInvalidHour = errors.New("invalid hour")

// RawSlot is one per-hour availability record as reported by the availability source.
type RawSlot struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Available *bool   `json:"available"`
	Price     float64 `json:"price"`
	Message   string  `json:"message,omitempty"`
}

// HourSlot is the normalized availability of one whole hour of a court's day.
type HourSlot struct {
	StartTime   string  `json:"start_time"` // HH:00
	Hour        int     `json:"-"`
	IsFree      bool    `json:"is_free"`
	HourlyPrice float64 `json:"hourly_price"`
}

// Raw converts the slot back into the record shape Normalize accepts.
func (s HourSlot) Raw() RawSlot {
	free := s.IsFree
	raw := RawSlot{
		StartTime: s.StartTime,
		EndTime:   FormatHour(s.Hour + 1),
		Available: &free,
		Price:     s.HourlyPrice,
	}
	if !s.IsFree {
		raw.Message = MessageOccupied
	}
	return raw
}

// Block is a maximal run of occupied hours as a half-open [Start, End) pair.
// End is the first hour at which booking could resume.
type Block struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	StartHour int    `json:"-"`
	EndHour   int    `json:"-"`
}

// Range is a user's booking selection. End is exclusive: {09:00, 11:00} books 09 and 10.
type Range struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// IsComplete reports whether both bounds have been picked.
func (r Range) IsComplete() bool {
	return strings.TrimSpace(r.Start) != "" && strings.TrimSpace(r.End) != ""
}

// Hours returns the number of booked hours, or 0 when the range is incomplete,
// malformed or not strictly increasing.
func (r Range) Hours() int {
	start, err := ParseHour(r.Start)
	if err != nil {
		return 0
	}
	end, err := ParseHour(r.End)
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

// ParseHour reads the hour out of "H", "HH", "HH:MM" or "HH:MM:SS".
// Minutes and seconds are validated and discarded. "24:00" is accepted as the
// end-of-day boundary.
func ParseHour(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidHour)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 || hour < 0 || hour > HoursPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}

	nonZero := false
	for _, p := range parts[1:] {
		v, err := strconv.Atoi(p)
		if err != nil || len(p) != 2 || v < 0 || v > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
		}
		if v != 0 {
			nonZero = true
		}
	}
	if hour == HoursPerDay && nonZero {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}

	return hour, nil
}

// FormatHour renders an hour as HH:00.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
