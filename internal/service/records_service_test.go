package service

import (
	"testing"
	"time"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecordsService(t *testing.T) RecordsService {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.MaintenanceRecord{}, &model.TrainingRecord{}))
	return NewRecordsService(repository.NewMaintenanceRepo(db), repository.NewTrainingRepo(db))
}

func scheduledFor(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.Local)
}

func TestMaintenanceCompletionStampsCompletedAt(t *testing.T) {
	svc := setupRecordsService(t)

	rec := &model.MaintenanceRecord{MachineName: "Tempering oven", ScheduledDate: scheduledFor(10)}
	require.NoError(t, svc.CreateMaintenance(rec, "u-1"))
	assert.Equal(t, model.MaintStatusScheduled, rec.Status)
	assert.Nil(t, rec.CompletedAt)

	updated, err := svc.UpdateMaintenanceStatus(rec.ID, model.MaintStatusCompleted, "u-1")
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt, "reaching a terminal status stamps the completion time")

	// A second terminal write keeps the original stamp.
	first := *updated.CompletedAt
	again, err := svc.UpdateMaintenanceStatus(rec.ID, model.MaintStatusCompleted, "u-1")
	require.NoError(t, err)
	assert.True(t, first.Equal(*again.CompletedAt))
}

func TestMaintenanceOverdueIsNotTerminal(t *testing.T) {
	svc := setupRecordsService(t)

	rec := &model.MaintenanceRecord{MachineName: "Cutting table", ScheduledDate: scheduledFor(1)}
	require.NoError(t, svc.CreateMaintenance(rec, "u-1"))

	updated, err := svc.UpdateMaintenanceStatus(rec.ID, model.MaintStatusOverdue, "u-1")
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)

	view, err := svc.GetMaintenance("")
	require.NoError(t, err)
	assert.Len(t, view.Active, 1, "overdue records stay in the active bucket")
	assert.Empty(t, view.History)
}

func TestTrainingExpiredGoesToHistory(t *testing.T) {
	svc := setupRecordsService(t)

	rec := &model.TrainingRecord{
		EmployeeName:  "A. Yilmaz",
		Topic:         "Forklift certification",
		ScheduledDate: scheduledFor(3),
	}
	require.NoError(t, svc.CreateTraining(rec, "u-1"))

	updated, err := svc.UpdateTrainingStatus(rec.ID, model.TrainStatusExpired, "u-1")
	require.NoError(t, err)
	assert.NotNil(t, updated.CompletedAt)

	view, err := svc.GetTraining("")
	require.NoError(t, err)
	assert.Empty(t, view.Active)
	assert.Len(t, view.History, 1)
}

func TestRecordsRejectUnknownStatus(t *testing.T) {
	svc := setupRecordsService(t)

	rec := &model.MaintenanceRecord{MachineName: "Washer", ScheduledDate: scheduledFor(5)}
	require.NoError(t, svc.CreateMaintenance(rec, "u-1"))

	_, err := svc.UpdateMaintenanceStatus(rec.ID, "cancelled", "u-1")
	assert.ErrorIs(t, err, ErrUnknownStatus, "work order statuses are not valid for maintenance")
}
