package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, status, created_at, updated_at`

const upsertAttendanceQuery = `
	INSERT INTO attendance_records (id, employee_id, date, status)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (employee_id, date)
	DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	RETURNING ` + attendanceColumns

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 AND date = $2`
	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

// GetOrCreate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	// The no-op update makes RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO attendance_records (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = attendance_records.status
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, id, employeeID, date, status))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get or create attendance: %w", err)
	}
	return a, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	a, err := scanAttendance(q.QueryRow(ctx, upsertAttendanceQuery, id, employeeID, date, status))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return a, nil
}

// UpsertMany implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertMany(ctx context.Context, employeeID string, dates []time.Time, status attendance.Status) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	for _, date := range dates {
		id, err := newID()
		if err != nil {
			return 0, err
		}
		batch.Queue(upsertAttendanceQuery, id, employeeID, date, status)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for range dates {
		if _, err := scanAttendance(results.QueryRow()); err != nil {
			return written, fmt.Errorf("failed to upsert attendance batch: %w", err)
		}
		written++
	}
	return written, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

// ListByEmployees implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployees(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Attendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = ANY($1::uuid[]) AND date BETWEEN $2 AND $3
		ORDER BY employee_id, date
	`
	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

// ListRecentByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRecentByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

// DeleteByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id = $1 AND date = $2`, employeeID, date)
	return err
}

// CountByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records WHERE employee_id = $1`, employeeID).Scan(&count)
	return count, err
}
