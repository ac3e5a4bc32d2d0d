package pricing

import (
	"math"
	"time"

	"github.com/TallerTAW/court-reservation/internal/slot"
)

// Kind is the discount scheme of a coupon.
type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// IsValid reports whether k is a known coupon kind.
func (k Kind) IsValid() bool {
	return k == KindPercentage || k == KindFixed
}

// Coupon is the part of a coupon record the calculator needs.
type Coupon struct {
	Code      string
	Kind      Kind
	Amount    float64
	ExpiresAt *time.Time
}

// Applies reports whether the coupon is still usable at now. A coupon with an
// unknown kind or a non-positive amount never applies.
func (c *Coupon) Applies(now time.Time) bool {
	if c == nil || !c.Kind.IsValid() || c.Amount <= 0 {
		return false
	}
	return c.ExpiresAt == nil || now.Before(*c.ExpiresAt)
}

// Quote is the breakdown shown to the user before confirming a booking.
type Quote struct {
	Hours       int     `json:"hours"`
	HourlyPrice float64 `json:"hourly_price"`
	Base        float64 `json:"base"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	CouponCode  string  `json:"coupon_code,omitempty"`
}

// NewQuote prices r at hourlyPrice with an optional coupon.
func NewQuote(r slot.Range, hourlyPrice float64, c *Coupon, now time.Time) Quote {
	hours := r.Hours()
	q := Quote{
		Hours:       hours,
		HourlyPrice: hourlyPrice,
		Base:        base(hours, hourlyPrice),
		Total:       Total(r, hourlyPrice, c, now),
	}
	q.Discount = roundCents(q.Base - q.Total)
	if c.Applies(now) {
		q.CouponCode = c.Code
	}
	return q
}

// Total returns the payable amount for r: hours times hourlyPrice, less the
// coupon when it has not expired. The result is rounded to cents and never
// negative, including for percentage coupons above 100.
func Total(r slot.Range, hourlyPrice float64, c *Coupon, now time.Time) float64 {
	hours := r.Hours()
	if hours <= 0 {
		return 0
	}

	total := base(hours, hourlyPrice)
	if c.Applies(now) {
		switch c.Kind {
		case KindPercentage:
			total = total * (1 - c.Amount/100)
		case KindFixed:
			total = math.Max(0, total-c.Amount)
		}
	}

	return roundCents(math.Max(0, total))
}

func base(hours int, hourlyPrice float64) float64 {
	if hours <= 0 {
		return 0
	}
	return roundCents(float64(hours) * hourlyPrice)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
