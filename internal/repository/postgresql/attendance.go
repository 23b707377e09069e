package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

const foreignKeyViolationCode = "23503"

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository. The (employee_id,
// record_date) primary key makes re-marking a day an overwrite.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, record_date, status, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, record_date)
		DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, rec.EmployeeID, rec.Date.Time(), rec.Status, rec.Reason)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return nil
}

// Query implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Query(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.employee_id, a.record_date, a.status, a.reason, a.created_at, a.updated_at, e.name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
	`

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.record_date >= $%d", argIdx))
		args = append(args, filter.StartDate.Time())
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.record_date <= $%d", argIdx))
		args = append(args, filter.EndDate.Time())
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	order := "ASC"
	if filter.SortDesc {
		order = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY a.record_date %s, e.name, a.employee_id", order)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var (
			rec  attendance.Record
			day  time.Time
			name string
		)
		if err := rows.Scan(&rec.EmployeeID, &day, &rec.Status, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt, &name); err != nil {
			return nil, err
		}
		rec.Date = dateutil.FromTime(day)
		rec.EmployeeName = &name
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
