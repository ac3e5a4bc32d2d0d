package slot

import "sort"

// Normalize turns raw availability records into HourSlots sorted by hour.
//
// A record is free only when it is flagged available and does not carry the
// OCCUPIED message. Records with an unreadable start time are dropped and the
// first record wins when two share an hour. A nil input yields an empty,
// non-nil slice so callers can tell "no data yet" apart from a failed fetch.
func Normalize(raw []RawSlot) []HourSlot {
	out := make([]HourSlot, 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for _, r := range raw {
		hour, err := ParseHour(r.StartTime)
		if err != nil || hour >= HoursPerDay || seen[hour] {
			continue
		}
		seen[hour] = true

		out = append(out, HourSlot{
			StartTime:   FormatHour(hour),
			Hour:        hour,
			IsFree:      r.Available != nil && *r.Available && r.Message != MessageOccupied,
			HourlyPrice: r.Price,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// index maps hour -> slot for lookups that must not assume contiguity.
func index(slots []HourSlot) map[int]HourSlot {
	m := make(map[int]HourSlot, len(slots))
	for _, s := range slots {
		m[s.Hour] = s
	}
	return m
}
