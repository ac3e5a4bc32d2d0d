package booking

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TallerTAW/court-reservation/internal/slot"
)

type wantSlot struct {
	start     string
	available bool
	message   string
}

func TestBuildDaySlots(t *testing.T) {
	// Base date for testing: 2026-02-08
	baseDate := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return time.Date(2026, 2, 8, h, 0, 0, 0, time.UTC) }
	dayBefore := baseDate.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		openStr  string
		closeStr string
		bookings []*Booking
		now      time.Time
		want     []wantSlot
		wantErr  error
	}{
		{
			name:     "No bookings, full day available",
			openStr:  "09:00:00",
			closeStr: "12:00:00",
			now:      dayBefore,
			want: []wantSlot{
				{start: "09:00:00", available: true},
				{start: "10:00:00", available: true},
				{start: "11:00:00", available: true},
			},
		},
		{
			name:     "One booking in the middle",
			openStr:  "09:00",
			closeStr: "12:00",
			bookings: []*Booking{
				{StartTime: at(10), EndTime: at(11), Status: StatusConfirmed},
			},
			now: dayBefore,
			want: []wantSlot{
				{start: "09:00:00", available: true},
				{start: "10:00:00", message: slot.MessageOccupied},
				{start: "11:00:00", available: true},
			},
		},
		{
			name:     "Booking pending is considered confirmed (unavailable)",
			openStr:  "09:00",
			closeStr: "11:00",
			bookings: []*Booking{
				{StartTime: at(9), EndTime: at(10), Status: StatusPending},
			},
			now: dayBefore,
			want: []wantSlot{
				{start: "09:00:00", message: slot.MessageOccupied},
				{start: "10:00:00", available: true},
			},
		},
		{
			name:     "Cancelled booking is ignored",
			openStr:  "09:00",
			closeStr: "11:00",
			bookings: []*Booking{
				{StartTime: at(9), EndTime: at(11), Status: StatusCancelled},
			},
			now: dayBefore,
			want: []wantSlot{
				{start: "09:00:00", available: true},
				{start: "10:00:00", available: true},
			},
		},
		{
			name:     "Booking with minutes blocks every hour it touches",
			openStr:  "09:00",
			closeStr: "12:00",
			bookings: []*Booking{
				{StartTime: at(9).Add(30 * time.Minute), EndTime: at(10).Add(15 * time.Minute), Status: StatusConfirmed},
			},
			now: dayBefore,
			want: []wantSlot{
				{start: "09:00:00", message: slot.MessageOccupied},
				{start: "10:00:00", message: slot.MessageOccupied},
				{start: "11:00:00", available: true},
			},
		},
		{
			name:     "Started hours are past",
			openStr:  "09:00",
			closeStr: "12:00",
			bookings: []*Booking{
				{StartTime: at(9), EndTime: at(10), Status: StatusConfirmed},
			},
			now: at(10),
			want: []wantSlot{
				{start: "09:00:00", message: slot.MessageOccupied},
				{start: "10:00:00", message: MessagePast},
				{start: "11:00:00", available: true},
			},
		},
		{
			name:     "Partial opening hours are trimmed",
			openStr:  "08:30:00",
			closeStr: "11:45:00",
			now:      dayBefore,
			want: []wantSlot{
				{start: "09:00:00", available: true},
				{start: "10:00:00", available: true},
			},
		},
		{
			name:     "Open until midnight",
			openStr:  "22:00",
			closeStr: "24:00:00",
			now:      dayBefore,
			want: []wantSlot{
				{start: "22:00:00", available: true},
				{start: "23:00:00", available: true},
			},
		},
		{
			name:     "Close before open",
			openStr:  "18:00",
			closeStr: "09:00",
			wantErr:  ErrInvalidOpeningHours,
		},
		{
			name:     "Garbled opening hours",
			openStr:  "nine",
			closeStr: "18:00",
			wantErr:  ErrInvalidOpeningHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildDaySlots(baseDate, tt.openStr, tt.closeStr, 20, tt.bookings, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))

			for i, w := range tt.want {
				assert.Equal(t, w.start, got[i].StartTime)
				require.NotNil(t, got[i].Available)
				assert.Equal(t, w.available, *got[i].Available, "slot %s", w.start)
				assert.Equal(t, w.message, got[i].Message, "slot %s", w.start)
				assert.Equal(t, 20.0, got[i].Price)
			}
		})
	}
}

func TestBuildDaySlotsFeedsEngine(t *testing.T) {
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	bookings := []*Booking{
		{StartTime: day.Add(11 * time.Hour), EndTime: day.Add(13 * time.Hour), Status: StatusConfirmed},
	}

	raw, err := BuildDaySlots(day, "08:00:00", "17:00:00", 20, bookings, day.Add(-time.Hour))
	require.NoError(t, err)

	slots := slot.Normalize(raw)
	blocks := slot.OccupiedBlocks(slots)

	assert.Equal(t, []slot.Block{{Start: "11:00", End: "13:00", StartHour: 11, EndHour: 13}}, blocks)
	assert.Equal(t,
		[]string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00", "16:00"},
		slot.StartCandidates(slots, blocks),
	)
}

func TestBuildDaySlotsLastHourEndsAtMidnight(t *testing.T) {
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	raw, err := BuildDaySlots(day, "23:00", "24:00", 20, nil, day)
	require.NoError(t, err)
	require.Len(t, raw, 1)

	assert.Equal(t, "23:00:00", raw[0].StartTime)
	assert.Equal(t, "24:00:00", raw[0].EndTime)
}

func TestBuildDaySlotsSkipsMissingHour(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Clocks jump from 02:00 to 03:00
	day := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)

	raw, err := BuildDaySlots(day, "00:00", "05:00", 20, nil, day.Add(-time.Hour))
	require.NoError(t, err)

	starts := make([]string, 0, len(raw))
	for _, r := range raw {
		starts = append(starts, r.StartTime)
	}
	assert.Equal(t, []string{"00:00:00", "01:00:00", "03:00:00", "04:00:00"}, starts)

	slots := slot.Normalize(raw)
	assert.False(t, slot.ReadyToSubmit(slots, slot.Range{Start: "01:00", End: "03:00"}))
	assert.True(t, slot.ReadyToSubmit(slots, slot.Range{Start: "03:00", End: "05:00"}))
}
