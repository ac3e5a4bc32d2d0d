package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// courtColumns casts TIME to ::text and NUMERIC to float8 to scan into plain Go types.
var courtColumns = []string{
	"c.id", "c.location_id", "l.name", "c.name", "c.hourly_price::float8",
	"l.opening_hours_start::text", "l.opening_hours_end::text", "c.created_at",
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(courtColumns...).
		From("public.courts c").
		Join("public.locations l ON c.location_id = l.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get court query failed: %w", err)
	}

	var c Court
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.LocationID, &c.LocationName, &c.Name, &c.HourlyPrice,
		&c.OpeningHoursStart, &c.OpeningHoursEnd, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(courtColumns, "count(*) OVER() as total_count")...).
		From("public.courts c").
		Join("public.locations l ON c.location_id = l.id")

	if filter.LocationID != "" {
		query = query.Where(squirrel.Eq{"c.location_id": filter.LocationID})
	}

	// Sorting
	orderBy := "c.name"
	if filter.SortBy != "" {
		orderBy = "c." + filter.SortBy
	}

	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var result []*Court
	var total int

	for rows.Next() {
		var c Court
		if err := rows.Scan(
			&c.ID, &c.LocationID, &c.LocationName, &c.Name, &c.HourlyPrice,
			&c.OpeningHoursStart, &c.OpeningHoursEnd, &c.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate courts failed: %w", err)
	}

	return result, total, nil
}
