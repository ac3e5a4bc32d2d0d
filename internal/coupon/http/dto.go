package http

import (
	"time"

	"github.com/TallerTAW/court-reservation/internal/coupon"
)

type CouponResponse struct {
	Code      string     `json:"code"`
	Kind      string     `json:"kind"`
	Amount    float64    `json:"amount"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func NewCouponResponse(c *coupon.Coupon) CouponResponse {
	return CouponResponse{
		Code:      c.Code,
		Kind:      string(c.Kind),
		Amount:    c.Amount,
		ExpiresAt: c.ExpiresAt,
	}
}
