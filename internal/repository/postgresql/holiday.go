package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

const uniqueViolationCode = "23505"

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (holiday_date, description)
		VALUES ($1, $2)
	`

	_, err := q.Exec(ctx, query, newHoliday.Date.Time(), newHoliday.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to insert holiday: %w", err)
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, date dateutil.Date) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE holiday_date = $1`, date.Time())
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Exists implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Exists(ctx context.Context, date dateutil.Date) (bool, error) {
	q := GetQuerier(ctx, h.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM holidays WHERE holiday_date = $1)`, date.Time()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	query := `
		SELECT holiday_date, description, created_at
		FROM holidays
		ORDER BY holiday_date
	`
	return h.queryHolidays(ctx, query)
}

// ListRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListRange(ctx context.Context, start, end dateutil.Date) ([]holiday.Holiday, error) {
	query := `
		SELECT holiday_date, description, created_at
		FROM holidays
		WHERE holiday_date BETWEEN $1 AND $2
		ORDER BY holiday_date
	`
	return h.queryHolidays(ctx, query, start.Time(), end.Time())
}

func (h *holidayRepositoryImpl) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var (
			hol holiday.Holiday
			day time.Time
		)
		if err := rows.Scan(&day, &hol.Description, &hol.CreatedAt); err != nil {
			return nil, err
		}
		hol.Date = dateutil.FromTime(day)
		holidays = append(holidays, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}
