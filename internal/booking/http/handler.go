package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TallerTAW/court-reservation/internal/auth"
	"github.com/TallerTAW/court-reservation/internal/booking"
	"github.com/TallerTAW/court-reservation/internal/pkg/request"
	"github.com/TallerTAW/court-reservation/internal/pkg/response"
	"github.com/TallerTAW/court-reservation/internal/slot"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// currentUser returns the authenticated user ID, writing a 401 when absent.
func currentUser(c *gin.Context) (string, bool) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID, true
}

// Availability returns the court's slots, occupied blocks and start candidates for a day.
func (h *Handler) Availability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid court id", err)
		return
	}

	var req DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	day, err := h.service.Availability(c.Request.Context(), uri.ID, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(day))
}

// EndCandidates returns the end hours selectable after the given start.
func (h *Handler) EndCandidates(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid court id", err)
		return
	}

	var req EndCandidatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	ends, err := h.service.EndCandidates(c.Request.Context(), uri.ID, req.Date, req.Start)
	if err != nil {
		response.Error(c, err)
		return
	}
	if ends == nil {
		ends = []string{}
	}

	c.JSON(http.StatusOK, EndCandidatesResponse{Date: req.Date, Start: req.Start, EndCandidates: ends})
}

// Check reports whether a (possibly partial) range is bookable.
func (h *Handler) Check(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid court id", err)
		return
	}

	var req CheckRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	res, err := h.service.Check(c.Request.Context(), uri.ID, req.Date, slot.Range{Start: req.Start, End: req.End})
	if err != nil {
		response.Error(c, err)
		return
	}

	conflicts := res.Conflicts
	if conflicts == nil {
		conflicts = []string{}
	}
	c.JSON(http.StatusOK, CheckRangeResponse{Valid: res.Valid, Conflicts: conflicts})
}

func (h *Handler) Quote(c *gin.Context) {
	var body QuoteBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	q, err := h.service.Quote(c.Request.Context(), booking.QuoteRequest{
		UserID:     userID,
		CourtID:    body.CourtID,
		Date:       body.Date,
		Range:      body.Range(),
		CouponCode: body.CouponCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuoteResponse(q))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:     userID,
		CourtID:    body.CourtID,
		Date:       body.Date,
		Range:      body.Range(),
		Attendees:  body.Attendees,
		CouponCode: body.CouponCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns the caller's own bookings.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	filter := booking.Filter{
		UserID:    userID,
		CourtID:   req.CourtID,
		Status:    req.Status,
		StartTime: req.StartTimeFrom,
		EndTime:   req.StartTimeTo,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid UUID", nil)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid UUID", nil)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
