package service

import (
	"testing"
	"time"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.InventoryGroup{}, &model.InventoryItem{}, &model.InventoryHistory{},
	))
	return db
}

func setupInventoryService(t *testing.T) (InventoryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	hub := ws.NewHub()
	go hub.Run()
	return NewInventoryService(repository.NewInventoryRepo(db), db, hub), db
}

func seedItem(t *testing.T, db *gorm.DB, stock int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{Name: "Float glass 8mm", Stock: stock, Unit: "sheet"}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestAdjustStockAppendsOneHistoryRow(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 10)

	updated, err := svc.AdjustStock(item.ID, 5, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Stock)

	var entries []model.InventoryHistory
	require.NoError(t, db.Where("item_id = ?", item.ID).Find(&entries).Error)
	require.Len(t, entries, 1, "exactly one ledger row per adjustment")
	assert.Equal(t, 10, entries[0].PreviousValue)
	assert.Equal(t, 15, entries[0].NewValue)
	assert.Equal(t, 5, entries[0].Delta)
	assert.Equal(t, model.HistoryActionAdjust, entries[0].Action)
}

func TestAdjustStockNegativeDelta(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 10)

	updated, err := svc.AdjustStock(item.ID, -4, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stock)

	var entry model.InventoryHistory
	require.NoError(t, db.Where("item_id = ?", item.ID).First(&entry).Error)
	assert.Equal(t, -4, entry.Delta)
}

func TestAdjustStockRejectsGoingNegative(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 3)

	_, err := svc.AdjustStock(item.ID, -4, "u-1", "Kemal")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The rejected transaction leaves no trace.
	var reloaded model.InventoryItem
	require.NoError(t, db.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)

	var count int64
	require.NoError(t, db.Model(&model.InventoryHistory{}).Where("item_id = ?", item.ID).Count(&count).Error)
	assert.Zero(t, count, "a failed adjustment must not write a ledger row")
}

func TestAdjustStockToExactlyZero(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 3)

	updated, err := svc.AdjustStock(item.ID, -3, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

func TestAdjustStockUnknownItem(t *testing.T) {
	svc, _ := setupInventoryService(t)

	_, err := svc.AdjustStock(uuid.New(), 1, "u-1", "Kemal")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSetStockCountRecordsImpliedDelta(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 20)

	updated, err := svc.SetStockCount(item.ID, 17, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, 17, updated.Stock)

	var entry model.InventoryHistory
	require.NoError(t, db.Where("item_id = ?", item.ID).First(&entry).Error)
	assert.Equal(t, 20, entry.PreviousValue)
	assert.Equal(t, 17, entry.NewValue)
	assert.Equal(t, -3, entry.Delta)
	assert.Equal(t, model.HistoryActionCount, entry.Action)
}

func TestSetStockCountRejectsNegativeValue(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 5)

	_, err := svc.SetStockCount(item.ID, -1, "u-1", "Kemal")
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestUpdateItemNeverTouchesStock(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 12)

	req := &model.InventoryItem{
		Name:              "Float glass 8mm low-iron",
		Stock:             999, // must be ignored
		LowStockThreshold: 4,
		Unit:              "sheet",
	}
	updated, err := svc.UpdateItem(item.ID, req, "u-1")
	require.NoError(t, err)

	assert.Equal(t, "Float glass 8mm low-iron", updated.Name)
	assert.Equal(t, 12, updated.Stock, "metadata updates must not move stock")

	var count int64
	require.NoError(t, db.Model(&model.InventoryHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetItemsDerivesLowStockFlag(t *testing.T) {
	svc, db := setupInventoryService(t)

	low := &model.InventoryItem{Name: "Edge sealant", Stock: 2, LowStockThreshold: 5}
	fine := &model.InventoryItem{Name: "Suction cups", Stock: 9, LowStockThreshold: 5}
	require.NoError(t, db.Create(low).Error)
	require.NoError(t, db.Create(fine).Error)

	views, err := svc.GetItems("")
	require.NoError(t, err)
	require.Len(t, views, 2)

	byName := map[string]bool{}
	for _, v := range views {
		byName[v.Name] = v.LowStock
	}
	assert.True(t, byName["Edge sealant"])
	assert.False(t, byName["Suction cups"])
}

func TestBuildReportEmptyFilterResult(t *testing.T) {
	svc, _ := setupInventoryService(t)

	_, err := svc.BuildReport(ReportFilter{Supplier: "nobody"})
	assert.Error(t, err)
}

func TestBuildReportBySupplier(t *testing.T) {
	svc, db := setupInventoryService(t)

	a := &model.InventoryItem{Name: "Float glass", Stock: 5, Supplier: "Sisecam"}
	b := &model.InventoryItem{Name: "Mirror glass", Stock: 2, Supplier: "Guardian"}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(b).Error)

	got, err := svc.BuildReport(ReportFilter{Supplier: "Sisecam", ClientName: "Glaserei Nordwind"})
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Float glass", got.Rows[0].Description)
	assert.Equal(t, "Glaserei Nordwind", got.Meta.ClientName)
	assert.NotEmpty(t, got.Meta.ReportID)
}

func TestStockBroadcastOnlyAfterCommit(t *testing.T) {
	db := setupTestDB(t)
	hub := ws.NewHub() // no Run loop: the test reads the channel directly
	svc := NewInventoryService(repository.NewInventoryRepo(db), db, hub)
	item := seedItem(t, db, 5)

	_, err := svc.AdjustStock(item.ID, -10, "u-1", "Kemal")
	require.ErrorIs(t, err, ErrInsufficientStock)

	select {
	case msg := <-hub.Broadcast:
		t.Fatalf("unexpected push after a rolled-back adjustment: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}

	_, err = svc.AdjustStock(item.ID, 3, "u-1", "Kemal")
	require.NoError(t, err)

	select {
	case msg := <-hub.Broadcast:
		assert.Contains(t, string(msg), `"stock_update"`)
		assert.Contains(t, string(msg), `"new_stock":8`)
	case <-time.After(time.Second):
		t.Fatal("expected a push after a committed adjustment")
	}
}

func TestItemHistoryAccumulates(t *testing.T) {
	svc, db := setupInventoryService(t)
	item := seedItem(t, db, 0)

	_, err := svc.AdjustStock(item.ID, 10, "u-1", "Kemal")
	require.NoError(t, err)
	_, err = svc.AdjustStock(item.ID, -2, "u-1", "Kemal")
	require.NoError(t, err)
	_, err = svc.SetStockCount(item.ID, 7, "u-1", "Kemal")
	require.NoError(t, err)

	entries, err := svc.GetItemHistory(item.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	var reloaded model.InventoryItem
	require.NoError(t, db.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, 7, reloaded.Stock)
}
