package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_OneRecordPerDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createEmployee(t, db, "Siti", "siti@company.com", "IT", "2024-01-01")
	day := date(t, "2024-01-02")

	first, err := repo.GetOrCreate(ctx, emp.ID, day, attendance.StatusAbsent)
	require.NoError(t, err)
	again, err := repo.GetOrCreate(ctx, emp.ID, day, attendance.StatusPresent)
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, attendance.StatusAbsent, again.Status, "get-or-create keeps the stored status")

	updated, err := repo.Upsert(ctx, emp.ID, day, attendance.StatusPresent)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, attendance.StatusPresent, updated.Status)

	records, err := repo.ListByEmployee(ctx, emp.ID, day, day)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	found, err := repo.GetByEmployeeAndDate(ctx, emp.ID, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.GetByEmployeeAndDate(ctx, emp.ID, date(t, "2024-01-03"))
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestAttendanceRepository_UpsertManyOverwrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createEmployee(t, db, "Budi", "budi@company.com", "HR", "2024-01-01")

	_, err := repo.Upsert(ctx, emp.ID, date(t, "2024-03-05"), attendance.StatusPresent)
	require.NoError(t, err)

	dates := []time.Time{date(t, "2024-03-04"), date(t, "2024-03-05"), date(t, "2024-03-06")}
	written, err := repo.UpsertMany(ctx, emp.ID, dates, attendance.StatusLeave)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	records, err := repo.ListByEmployee(ctx, emp.ID, dates[0], dates[2])
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, attendance.StatusLeave, r.Status)
	}
}

func TestAttendanceRepository_DeleteByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	err := repo.DeleteByID(context.Background(), "0190a5a0-0000-7000-8000-000000000000")

	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
