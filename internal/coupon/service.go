package coupon

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	ListUsable(ctx context.Context, userID string) ([]*Coupon, error)
	// Resolve looks up code and checks it can be applied by userID at now.
	Resolve(ctx context.Context, code, userID string, now time.Time) (*Coupon, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListUsable(ctx context.Context, userID string) ([]*Coupon, error) {
	return s.repo.ListUsable(ctx, userID, s.now())
}

func (s *service) Resolve(ctx context.Context, code, userID string, now time.Time) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := c.Check(userID, now); err != nil {
		return nil, err
	}
	return c, nil
}
