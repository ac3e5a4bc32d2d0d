package court

import (
	"net/http"
	"time"

	"github.com/TallerTAW/court-reservation/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "court not found")
)

// Court is a bookable playing surface at a location, priced per hour.
type Court struct {
	ID                string
	LocationID        string
	LocationName      string
	Name              string
	HourlyPrice       float64
	OpeningHoursStart string // Format: HH:MM:SS, from the owning location
	OpeningHoursEnd   string // Format: HH:MM:SS, from the owning location
	CreatedAt         time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	LocationID string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
