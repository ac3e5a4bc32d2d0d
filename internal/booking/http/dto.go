package http

import (
	"strings"
	"time"

	"github.com/TallerTAW/court-reservation/internal/booking"
	courtHttp "github.com/TallerTAW/court-reservation/internal/court/http"
	"github.com/TallerTAW/court-reservation/internal/pkg/request"
	"github.com/TallerTAW/court-reservation/internal/pricing"
	"github.com/TallerTAW/court-reservation/internal/slot"
)

// ListBookingsRequest defines query parameters for listing the caller's bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID       string     `form:"court_id" binding:"omitempty,uuid"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy        string     `form:"sort_by" binding:"omitempty,oneof=start_time end_time created_at status"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.StartTimeFrom != nil && r.StartTimeTo != nil {
		if r.StartTimeFrom.After(*r.StartTimeTo) {
			return booking.ErrInvalidTimeRange
		}
	}
	r.SortOrder = strings.ToUpper(r.SortOrder)
	return nil
}

type BookingResponse struct {
	ID         string             `json:"id"`
	Court      courtHttp.CourtTag `json:"court"`
	UserID     string             `json:"user_id"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    time.Time          `json:"end_time"`
	Attendees  int                `json:"attendees"`
	CouponCode *string            `json:"coupon_code,omitempty"`
	TotalPrice float64            `json:"total_price"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Court:      courtHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		UserID:     b.UserID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Attendees:  b.Attendees,
		CouponCode: b.CouponCode,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// QuoteBookingRequest is the body of a price preview. Hours are "HH:00".
type QuoteBookingRequest struct {
	CourtID    string `json:"court_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	CouponCode string `json:"coupon_code"`
}

// Validate performs custom validation for QuoteBookingRequest.
func (r *QuoteBookingRequest) Validate() error {
	return validateRange(r.StartTime, r.EndTime)
}

func (r *QuoteBookingRequest) Range() slot.Range {
	return slot.Range{Start: r.StartTime, End: r.EndTime}
}

type CreateBookingRequest struct {
	QuoteBookingRequest
	Attendees int `json:"attendees" binding:"required,min=1"`
}

// validateRange rejects malformed or inverted hour bounds before any lookup.
func validateRange(start, end string) error {
	r := slot.Range{Start: start, End: end}
	if !r.IsComplete() {
		return booking.ErrIncompleteRange
	}
	if r.Hours() == 0 {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type QuoteResponse struct {
	Court courtHttp.CourtTag `json:"court"`
	Date  string             `json:"date"`
	pricing.Quote
}

func NewQuoteResponse(q *booking.Quote) QuoteResponse {
	return QuoteResponse{
		Court: courtHttp.CourtTag{ID: q.Court.ID, Name: q.Court.Name},
		Date:  q.Date,
		Quote: q.Quote,
	}
}

// DayRequest selects a court's day.
type DayRequest struct {
	Date string `form:"date" binding:"required"`
}

// EndCandidatesRequest lists the valid end hours for a chosen start.
type EndCandidatesRequest struct {
	DayRequest
	Start string `form:"start" binding:"required"`
}

// CheckRangeRequest validates a range. Either bound may be omitted while the
// user is still picking.
type CheckRangeRequest struct {
	DayRequest
	Start string `form:"start"`
	End   string `form:"end"`
}

type AvailabilityResponse struct {
	Court           courtHttp.CourtTag `json:"court"`
	Date            string             `json:"date"`
	HourlyPrice     float64            `json:"hourly_price"`
	Slots           []slot.HourSlot    `json:"slots"`
	Blocks          []slot.Block       `json:"blocks"`
	StartCandidates []string           `json:"start_candidates"`
}

func NewAvailabilityResponse(d *booking.DayAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		Court:           courtHttp.CourtTag{ID: d.Court.ID, Name: d.Court.Name},
		Date:            d.Date,
		HourlyPrice:     d.Court.HourlyPrice,
		Slots:           d.Slots,
		Blocks:          d.Blocks,
		StartCandidates: d.StartCandidates,
	}
	// Keep arrays in the JSON output for closed days
	if resp.Slots == nil {
		resp.Slots = []slot.HourSlot{}
	}
	if resp.Blocks == nil {
		resp.Blocks = []slot.Block{}
	}
	if resp.StartCandidates == nil {
		resp.StartCandidates = []string{}
	}
	return resp
}

type EndCandidatesResponse struct {
	Date          string   `json:"date"`
	Start         string   `json:"start"`
	EndCandidates []string `json:"end_candidates"`
}

type CheckRangeResponse struct {
	Valid     bool     `json:"valid"`
	Conflicts []string `json:"conflicts"`
}
