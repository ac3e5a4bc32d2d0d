package coupon

import (
	"net/http"
	"time"

	"github.com/TallerTAW/court-reservation/internal/pkg/apperror"
	"github.com/TallerTAW/court-reservation/internal/pricing"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "coupon not found")
	ErrExpired  = apperror.New(http.StatusBadRequest, "coupon has expired")
	ErrInactive = apperror.New(http.StatusBadRequest, "coupon is not active")
	ErrConsumed = apperror.New(http.StatusConflict, "coupon has already been used")
	ErrNotOwner = apperror.New(http.StatusForbidden, "coupon belongs to another user")
	ErrInvalid  = apperror.New(http.StatusBadRequest, "coupon has an invalid discount")
)

// Coupon is a discount issued to a user, usable on a single booking.
type Coupon struct {
	ID                  string
	Code                string
	UserID              string
	Kind                pricing.Kind
	Amount              float64
	Active              bool
	ExpiresAt           *time.Time
	ConsumedByBookingID *string
	CreatedAt           time.Time
}

// Check reports why the coupon cannot be used by userID at now, or nil.
func (c *Coupon) Check(userID string, now time.Time) error {
	switch {
	case c.UserID != "" && c.UserID != userID:
		return ErrNotOwner
	case !c.Active:
		return ErrInactive
	case c.ConsumedByBookingID != nil:
		return ErrConsumed
	case c.ExpiresAt != nil && !now.Before(*c.ExpiresAt):
		return ErrExpired
	case !c.Kind.IsValid() || c.Amount <= 0:
		return ErrInvalid
	}
	return nil
}

// Pricing returns the view of the coupon the cost calculator consumes.
func (c *Coupon) Pricing() *pricing.Coupon {
	return &pricing.Coupon{
		Code:      c.Code,
		Kind:      c.Kind,
		Amount:    c.Amount,
		ExpiresAt: c.ExpiresAt,
	}
}
