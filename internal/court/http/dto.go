package http

import (
	"strings"
	"time"

	"github.com/TallerTAW/court-reservation/internal/court"
	"github.com/TallerTAW/court-reservation/internal/pkg/request"
)

// CourtTag is the compact court reference embedded in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CourtResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LocationID        string    `json:"location_id"`
	LocationName      string    `json:"location_name"`
	HourlyPrice       float64   `json:"hourly_price"`
	OpeningHoursStart string    `json:"opening_hours_start"`
	OpeningHoursEnd   string    `json:"opening_hours_end"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:                c.ID,
		Name:              c.Name,
		LocationID:        c.LocationID,
		LocationName:      c.LocationName,
		HourlyPrice:       c.HourlyPrice,
		OpeningHoursStart: c.OpeningHoursStart,
		OpeningHoursEnd:   c.OpeningHoursEnd,
		CreatedAt:         c.CreatedAt,
	}
}

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name hourly_price created_at"`
}

// Validate performs custom validation for ListCourtsRequest.
func (r *ListCourtsRequest) Validate() error {
	r.SortOrder = strings.ToUpper(r.SortOrder)
	return nil
}
