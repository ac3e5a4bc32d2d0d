package slot

// OccupiedBlocks merges consecutive occupied hours into blocks.
//
// Slots must be sorted ascending (Normalize guarantees this). While a block is
// open its end tracks the last occupied hour seen; closing it moves the end one
// hour forward so it points at the first hour booking could resume.
func OccupiedBlocks(slots []HourSlot) []Block {
	blocks := make([]Block, 0)

	var open *Block
	closeBlock := func() {
		open.EndHour++
		open.End = FormatHour(open.EndHour)
		blocks = append(blocks, *open)
		open = nil
	}

	for _, s := range slots {
		if s.IsFree {
			if open != nil {
				closeBlock()
			}
			continue
		}

		if open == nil {
			open = &Block{
				Start:     s.StartTime,
				End:       s.StartTime,
				StartHour: s.Hour,
				EndHour:   s.Hour,
			}
			continue
		}
		open.End = s.StartTime
		open.EndHour = s.Hour
	}

	if open != nil {
		closeBlock()
	}

	return blocks
}
