package slot

// StartCandidates lists the hours a booking may start at, ascending.
//
// A start must be a free slot and must not coincide with the start of an
// occupied block. The second check repeats the first for well-formed blocks and
// guards against blocks computed from a different slot list.
func StartCandidates(slots []HourSlot, blocks []Block) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if !s.IsFree || startsBlock(blocks, s.Hour) {
			continue
		}
		out = append(out, s.StartTime)
	}
	return out
}

// EndCandidates lists the hours offered as a booking end once start is picked,
// ascending. Every later free hour is offered, except hours lying inside an
// occupied block. Whether the hours between start and the chosen end are all
// free is left to IsRangeValid.
func EndCandidates(slots []HourSlot, blocks []Block, start string) []string {
	startHour, err := ParseHour(start)
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Hour <= startHour || !s.IsFree || insideBlock(blocks, s.Hour) {
			continue
		}
		out = append(out, s.StartTime)
	}
	return out
}

func startsBlock(blocks []Block, hour int) bool {
	for _, b := range blocks {
		if b.StartHour == hour {
			return true
		}
	}
	return false
}

// insideBlock reports whether hour is one of the block's occupied hours.
func insideBlock(blocks []Block, hour int) bool {
	for _, b := range blocks {
		if hour >= b.StartHour && hour < b.EndHour {
			return true
		}
	}
	return false
}
