package booking

import (
	"net/http"
	"time"

	"github.com/TallerTAW/court-reservation/internal/court"
	"github.com/TallerTAW/court-reservation/internal/pkg/apperror"
	"github.com/TallerTAW/court-reservation/internal/pricing"
	"github.com/TallerTAW/court-reservation/internal/slot"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrIncompleteRange     = apperror.New(http.StatusBadRequest, "start and end time are required")
	ErrInvalidDate         = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	ErrInvalidAttendees    = apperror.New(http.StatusBadRequest, "attendees must be at least 1")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidOpeningHours = apperror.New(http.StatusUnprocessableEntity, "court has invalid opening hours")
	ErrCourtNotFound       = apperror.New(http.StatusNotFound, "court not found")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrAlreadyStarted      = apperror.New(http.StatusBadRequest, "booking has already started")
)

// DateLayout is the calendar date format used across the booking API.
const DateLayout = "2006-01-02"

// MessagePast marks hours that can no longer be booked because they have started.
const MessagePast = "PAST"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID         string
	CourtID    string
	CourtName  string
	UserID     string
	StartTime  time.Time
	EndTime    time.Time
	Attendees  int
	CouponCode *string
	TotalPrice float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Filter struct {
	UserID    string
	CourtID   string
	Status    string
	StartTime *time.Time // Filter bookings ending after this time
	EndTime   *time.Time // Filter bookings starting before this time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// DayAvailability is one court's bookable day as computed from a fresh slot list.
type DayAvailability struct {
	Court           *court.Court
	Date            string
	Slots           []slot.HourSlot
	Blocks          []slot.Block
	StartCandidates []string
}

// Quote is a price preview for a range on one court's day.
type Quote struct {
	Court *court.Court
	Date  string
	pricing.Quote
}

// CheckResult tells whether a range can be booked and, if not, which hours block it.
type CheckResult struct {
	Valid     bool
	Conflicts []string
}
