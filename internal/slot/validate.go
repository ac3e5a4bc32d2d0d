package slot

// IsRangeValid reports whether [start, end) can be booked against slots.
//
// An unset bound passes so partially entered selections are not flagged early;
// use ReadyToSubmit before creating a booking. Unparseable hours are reported
// as not bookable rather than returned as errors.
func IsRangeValid(slots []HourSlot, start, end string) bool {
	r := Range{Start: start, End: end}
	if !r.IsComplete() {
		return true
	}

	startHour, err := ParseHour(start)
	if err != nil || startHour >= HoursPerDay {
		return false
	}
	endHour, err := ParseHour(end)
	if err != nil || endHour <= startHour {
		return false
	}

	byHour := index(slots)

	if s, ok := byHour[startHour]; !ok || !s.IsFree {
		return false
	}
	if !withinDay(slots, endHour) {
		return false
	}

	for h := startHour; h < endHour; h++ {
		s, ok := byHour[h]
		if !ok || !s.IsFree {
			return false
		}
	}
	return true
}

// ReadyToSubmit is IsRangeValid without the pass for unset bounds.
func ReadyToSubmit(slots []HourSlot, r Range) bool {
	return r.IsComplete() && IsRangeValid(slots, r.Start, r.End)
}

// Conflicts returns the hours in [start, end) that are occupied or outside the
// court's day. Malformed or empty bounds yield no conflicts.
func Conflicts(slots []HourSlot, start, end string) []string {
	out := make([]string, 0)

	startHour, err := ParseHour(start)
	if err != nil {
		return out
	}
	endHour, err := ParseHour(end)
	if err != nil {
		return out
	}

	byHour := index(slots)
	for h := startHour; h < endHour; h++ {
		if s, ok := byHour[h]; !ok || !s.IsFree {
			out = append(out, FormatHour(h))
		}
	}
	return out
}

// withinDay reports whether an end hour stays inside the operating day, i.e.
// no later than one hour past the last slot.
func withinDay(slots []HourSlot, endHour int) bool {
	if len(slots) == 0 {
		return false
	}
	last := slots[0].Hour
	for _, s := range slots[1:] {
		if s.Hour > last {
			last = s.Hour
		}
	}
	return endHour <= last+1
}
