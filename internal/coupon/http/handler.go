package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TallerTAW/court-reservation/internal/auth"
	"github.com/TallerTAW/court-reservation/internal/coupon"
	"github.com/TallerTAW/court-reservation/internal/pkg/response"
)

type Handler struct {
	service coupon.Service
}

func NewHandler(service coupon.Service) *Handler {
	return &Handler{service: service}
}

// ListMine returns the caller's coupons that can still be applied to a booking.
func (h *Handler) ListMine(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	coupons, err := h.service.ListUsable(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CouponResponse, len(coupons))
	for i, cp := range coupons {
		items[i] = NewCouponResponse(cp)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
