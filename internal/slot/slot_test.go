package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// daySlots builds a contiguous normalized day from first to last inclusive,
// marking the listed hours as occupied.
func daySlots(first, last int, occupied ...int) []HourSlot {
	taken := make(map[int]bool, len(occupied))
	for _, h := range occupied {
		taken[h] = true
	}
	slots := make([]HourSlot, 0, last-first+1)
	for h := first; h <= last; h++ {
		slots = append(slots, HourSlot{
			StartTime:   FormatHour(h),
			Hour:        h,
			IsFree:      !taken[h],
			HourlyPrice: 20,
		})
	}
	return slots
}

// scenarioA: 08-11 free, 11-13 occupied, 13-17 free.
func scenarioA() []HourSlot {
	return daySlots(8, 16, 11, 12)
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00:00", want: 9},
		{in: "09:45", want: 9},
		{in: "9", want: 9},
		{in: " 13:00 ", want: 13},
		{in: "00:00", want: 0},
		{in: "24:00", want: 24},
		{in: "24:30", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "9:5", wantErr: true},
		{in: "ab:00", wantErr: true},
		{in: "", wantErr: true},
		{in: "09:00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHour(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHour)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeHours(t *testing.T) {
	assert.Equal(t, 2, Range{Start: "09:00", End: "11:00"}.Hours())
	assert.Equal(t, 0, Range{Start: "11:00", End: "09:00"}.Hours())
	assert.Equal(t, 0, Range{Start: "", End: "09:00"}.Hours())
	assert.Equal(t, 0, Range{Start: "x", End: "09:00"}.Hours())
	assert.False(t, Range{Start: "09:00"}.IsComplete())
}

func TestNormalize(t *testing.T) {
	t.Run("nil input yields empty slice", func(t *testing.T) {
		got := Normalize(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("truncates, sorts and flags", func(t *testing.T) {
		raw := []RawSlot{
			{StartTime: "10:00:00", EndTime: "11:00:00", Available: boolPtr(true), Price: 25},
			{StartTime: "09:30:00", EndTime: "10:00:00", Available: boolPtr(true), Price: 20},
			{StartTime: "11:00:00", Available: boolPtr(false), Price: 20},
			{StartTime: "12:00:00", Available: boolPtr(true), Message: MessageOccupied},
			{StartTime: "13:00:00", Available: nil},
		}

		got := Normalize(raw)

		assert.Equal(t, []HourSlot{
			{StartTime: "09:00", Hour: 9, IsFree: true, HourlyPrice: 20},
			{StartTime: "10:00", Hour: 10, IsFree: true, HourlyPrice: 25},
			{StartTime: "11:00", Hour: 11, IsFree: false, HourlyPrice: 20},
			{StartTime: "12:00", Hour: 12, IsFree: false},
			{StartTime: "13:00", Hour: 13, IsFree: false},
		}, got)
	})

	t.Run("drops garbled and duplicate hours", func(t *testing.T) {
		raw := []RawSlot{
			{StartTime: "nonsense", Available: boolPtr(true)},
			{StartTime: "08:00", Available: boolPtr(true)},
			{StartTime: "08:00", Available: boolPtr(false)},
			{StartTime: "24:00", Available: boolPtr(true)},
		}

		got := Normalize(raw)

		require.Len(t, got, 1)
		assert.True(t, got[0].IsFree)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := Normalize([]RawSlot{
			{StartTime: "08:15:00", Available: boolPtr(true), Price: 20},
			{StartTime: "09:00:00", Available: boolPtr(true), Message: MessageOccupied, Price: 20},
			{StartTime: "10:00:00", Available: boolPtr(false), Price: 30},
		})

		raw := make([]RawSlot, len(first))
		for i, s := range first {
			raw[i] = s.Raw()
		}

		assert.Equal(t, first, Normalize(raw))
	})
}

func TestOccupiedBlocks(t *testing.T) {
	tests := []struct {
		name  string
		slots []HourSlot
		want  []Block
	}{
		{
			name:  "empty",
			slots: nil,
			want:  []Block{},
		},
		{
			name:  "all free",
			slots: daySlots(8, 12),
			want:  []Block{},
		},
		{
			name:  "all occupied",
			slots: daySlots(8, 12, 8, 9, 10, 11, 12),
			want:  []Block{{Start: "08:00", End: "13:00", StartHour: 8, EndHour: 13}},
		},
		{
			name:  "scenario A",
			slots: scenarioA(),
			want:  []Block{{Start: "11:00", End: "13:00", StartHour: 11, EndHour: 13}},
		},
		{
			name:  "runs at both edges",
			slots: daySlots(8, 14, 8, 9, 12, 14),
			want: []Block{
				{Start: "08:00", End: "10:00", StartHour: 8, EndHour: 10},
				{Start: "12:00", End: "13:00", StartHour: 12, EndHour: 13},
				{Start: "14:00", End: "15:00", StartHour: 14, EndHour: 15},
			},
		},
		{
			name:  "last hour of the day",
			slots: daySlots(20, 23, 23),
			want:  []Block{{Start: "23:00", End: "24:00", StartHour: 23, EndHour: 24}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupiedBlocks(tt.slots))
		})
	}
}

func TestOccupiedBlocksCoverageAndContiguity(t *testing.T) {
	// Every occupancy pattern of an 8-hour day.
	const first, last = 8, 15
	for mask := 0; mask < 1<<(last-first+1); mask++ {
		var occupied []int
		for i := 0; i <= last-first; i++ {
			if mask&(1<<i) != 0 {
				occupied = append(occupied, first+i)
			}
		}
		slots := daySlots(first, last, occupied...)
		blocks := OccupiedBlocks(slots)

		covered := make(map[int]bool)
		for i, b := range blocks {
			require.GreaterOrEqual(t, b.EndHour-b.StartHour, 1, "mask %b", mask)
			if i > 0 {
				require.Greater(t, b.StartHour, blocks[i-1].EndHour, "blocks touch or overlap, mask %b", mask)
			}
			for h := b.StartHour; h < b.EndHour; h++ {
				covered[h] = true
			}
		}

		for _, s := range slots {
			assert.Equal(t, !s.IsFree, covered[s.Hour], "mask %b hour %d", mask, s.Hour)
		}
		assert.Len(t, covered, len(occupied), "mask %b", mask)
	}
}

func TestStartCandidates(t *testing.T) {
	slots := scenarioA()
	assert.Equal(t,
		[]string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00", "16:00"},
		StartCandidates(slots, OccupiedBlocks(slots)),
	)

	assert.Empty(t, StartCandidates(nil, nil))

	// A block that disagrees with the slot list still excludes its start.
	stale := []Block{{Start: "09:00", End: "10:00", StartHour: 9, EndHour: 10}}
	assert.Equal(t, []string{"08:00", "10:00"}, StartCandidates(daySlots(8, 10), stale))
}

func TestEndCandidates(t *testing.T) {
	slots := scenarioA()
	blocks := OccupiedBlocks(slots)

	assert.Equal(t,
		[]string{"10:00", "13:00", "14:00", "15:00", "16:00"},
		EndCandidates(slots, blocks, "09:00"),
	)
	assert.Equal(t, []string{"14:00", "15:00", "16:00"}, EndCandidates(slots, blocks, "13:00"))
	assert.Empty(t, EndCandidates(slots, blocks, "16:00"))
	assert.Empty(t, EndCandidates(slots, blocks, "garbage"))
	assert.Empty(t, EndCandidates(nil, nil, "09:00"))
}

func TestIsRangeValid(t *testing.T) {
	slots := scenarioA()

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "free run", start: "08:00", end: "11:00", want: true},
		{name: "single hour", start: "13:00", end: "14:00", want: true},
		{name: "until closing", start: "14:00", end: "17:00", want: true},
		{name: "past closing", start: "14:00", end: "18:00", want: false},
		{name: "crosses block", start: "09:00", end: "14:00", want: false},
		{name: "starts in block", start: "11:00", end: "13:00", want: false},
		{name: "end before start", start: "10:00", end: "09:00", want: false},
		{name: "empty range", start: "10:00", end: "10:00", want: false},
		{name: "before opening", start: "07:00", end: "09:00", want: false},
		{name: "unset start passes", start: "", end: "10:00", want: true},
		{name: "unset end passes", start: "12:00", end: "", want: true},
		{name: "garbled start", start: "nine", end: "10:00", want: false},
		{name: "garbled end", start: "09:00", end: "1o:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRangeValid(slots, tt.start, tt.end))
		})
	}
}

func TestIsRangeValidOccupiedMiddleHour(t *testing.T) {
	slots := daySlots(8, 16, 10)
	assert.False(t, IsRangeValid(slots, "09:00", "11:00"))
	assert.Equal(t, []string{"10:00"}, Conflicts(slots, "09:00", "11:00"))
}

func TestIsRangeValidMatchesBruteForce(t *testing.T) {
	patterns := [][]int{nil, {8}, {10}, {9, 10}, {8, 12, 15}, {11, 12, 13, 14, 15}}

	for _, occupied := range patterns {
		slots := daySlots(8, 15, occupied...)
		free := make(map[int]bool)
		for _, s := range slots {
			free[s.Hour] = s.IsFree
		}

		for start := 0; start <= HoursPerDay; start++ {
			for end := 0; end <= HoursPerDay; end++ {
				want := start < HoursPerDay && end > start
				for h := start; want && h < end; h++ {
					want = free[h]
				}

				got := IsRangeValid(slots, FormatHour(start), FormatHour(end))
				assert.Equal(t, want, got, "occupied=%v start=%d end=%d", occupied, start, end)
			}
		}
	}
}

func TestReadyToSubmit(t *testing.T) {
	slots := scenarioA()
	assert.False(t, ReadyToSubmit(slots, Range{End: "10:00"}))
	assert.True(t, ReadyToSubmit(slots, Range{Start: "09:00", End: "10:00"}))
	assert.False(t, ReadyToSubmit(slots, Range{Start: "10:00", End: "12:00"}))
}

func TestConflicts(t *testing.T) {
	slots := scenarioA()
	assert.Equal(t, []string{"11:00", "12:00"}, Conflicts(slots, "10:00", "14:00"))
	assert.Equal(t, []string{"17:00"}, Conflicts(slots, "16:00", "18:00"))
	assert.Empty(t, Conflicts(slots, "08:00", "10:00"))
	assert.Empty(t, Conflicts(slots, "", "10:00"))
}
