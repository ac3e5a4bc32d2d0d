package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TallerTAW/court-reservation/internal/pricing"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	// ListUsable returns the user's active, unexpired and unconsumed coupons that
	// carry a valid discount.
	ListUsable(ctx context.Context, userID string, now time.Time) ([]*Coupon, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var couponColumns = []string{
	"id", "code", "coalesce(user_id::text, '')", "kind", "amount::float8",
	"active", "expires_at", "consumed_by_booking_id::text", "created_at",
}

func scanCoupon(row pgx.Row) (*Coupon, error) {
	var c Coupon
	if err := row.Scan(
		&c.ID, &c.Code, &c.UserID, &c.Kind, &c.Amount,
		&c.Active, &c.ExpiresAt, &c.ConsumedByBookingID, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *pgxRepository) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(couponColumns...).
		From("public.coupons").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get coupon query failed: %w", err)
	}

	c, err := scanCoupon(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get coupon failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) ListUsable(ctx context.Context, userID string, now time.Time) ([]*Coupon, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(couponColumns...).
		From("public.coupons").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"consumed_by_booking_id": nil}).
		Where(squirrel.Eq{"kind": []pricing.Kind{pricing.KindPercentage, pricing.KindFixed}}).
		Where(squirrel.Gt{"amount": 0}).
		Where(squirrel.Or{
			squirrel.Eq{"expires_at": nil},
			squirrel.Gt{"expires_at": now},
		}).
		OrderBy("expires_at ASC NULLS LAST", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list coupons query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list coupons failed: %w", err)
	}
	defer rows.Close()

	var result []*Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon failed: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupons failed: %w", err)
	}

	return result, nil
}
