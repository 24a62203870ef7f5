package repository

import (
	"context"
	"fmt"
	"time"

	"eurojackpot/database"
	"eurojackpot/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DrawDateLayout is the date format used for draw dates everywhere
const DrawDateLayout = "2006-01-02"

// queryable is satisfied by both the pool and a transaction
type queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DrawRepository stores historical draws in Postgres
type DrawRepository struct {
	q queryable
}

// NewDrawRepository creates a draw repository backed by the pool
func NewDrawRepository(db *database.DB) *DrawRepository {
	return &DrawRepository{q: db.Pool}
}

func newDrawRepositoryWithTx(tx queryable) *DrawRepository {
	return &DrawRepository{q: tx}
}

// Upsert inserts draws or replaces the numbers of already stored dates
func (r *DrawRepository) Upsert(ctx context.Context, draws []models.Draw) (int, error) {
	query := `
		INSERT INTO draws (draw_date, numbers, star_numbers, imported_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (draw_date) DO UPDATE
		SET numbers = EXCLUDED.numbers,
			star_numbers = EXCLUDED.star_numbers,
			imported_at = NOW()
	`

	written := 0
	for _, draw := range draws {
		date, err := time.Parse(DrawDateLayout, draw.Date)
		if err != nil {
			return written, fmt.Errorf("invalid draw date %q: %w", draw.Date, err)
		}

		if _, err := r.q.Exec(ctx, query, date, toInt32(draw.Numbers), toInt32(draw.StarNumbers)); err != nil {
			return written, fmt.Errorf("failed to upsert draw %s: %w", draw.Date, err)
		}
		written++
	}

	return written, nil
}

// GetAll returns every stored draw ordered by date
func (r *DrawRepository) GetAll(ctx context.Context) ([]models.RawDraw, error) {
	query := `
		SELECT draw_date, numbers, star_numbers
		FROM draws
		ORDER BY draw_date ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	var draws []models.RawDraw
	for rows.Next() {
		var (
			date    time.Time
			numbers []int32
			stars   []int32
		)
		if err := rows.Scan(&date, &numbers, &stars); err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, models.NewRawDraw(date.Format(DrawDateLayout), fromInt32(numbers), fromInt32(stars)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}

	return draws, nil
}

// Count returns the number of stored draws
func (r *DrawRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM draws`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}
	return int(count), nil
}

// LatestDate returns the most recent draw date or nil when nothing is stored
func (r *DrawRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	if err := r.q.QueryRow(ctx, `SELECT MAX(draw_date) FROM draws`).Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to get latest draw date: %w", err)
	}
	return latest, nil
}

// StoredDates returns the stored draw dates within [since, until] as UTC
// midnights, oldest first
func (r *DrawRepository) StoredDates(ctx context.Context, since, until time.Time) ([]time.Time, error) {
	query := `
		SELECT draw_date
		FROM draws
		WHERE draw_date BETWEEN $1 AND $2
		ORDER BY draw_date ASC
	`

	rows, err := r.q.Query(ctx, query, since.Format(DrawDateLayout), until.Format(DrawDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query draw dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan draw date: %w", err)
		}
		dates = append(dates, time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draw dates: %w", err)
	}

	return dates, nil
}

func toInt32(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}

func fromInt32(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
