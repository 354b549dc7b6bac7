package service

import (
	"testing"
	"time"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductionService(t *testing.T) (ProductionService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.ProductionOrder{}, &model.ProductionItem{}))
	hub := ws.NewHub()
	go hub.Run()
	return NewProductionService(repository.NewProductionOrderRepo(db), hub), db
}

func TestCreateOrderDefaultsStatus(t *testing.T) {
	svc, _ := setupProductionService(t)

	order := &model.ProductionOrder{ClientName: "Glaserei Nordwind", OrderNumber: "ORD-100"}
	require.NoError(t, svc.CreateOrder(order, "u-1", "Kemal"))

	assert.Equal(t, model.StatusNotAuthorized, order.Status)
}

func TestCreateOrderRejectsAliasStatus(t *testing.T) {
	svc, _ := setupProductionService(t)

	order := &model.ProductionOrder{
		ClientName:  "Fenster Krause",
		OrderNumber: "ORD-101",
		Status:      "on_cabin",
	}
	assert.ErrorIs(t, svc.CreateOrder(order, "u-1", "Kemal"), ErrUnknownStatus)
}

func TestCreateOrderDuplicateNumber(t *testing.T) {
	svc, _ := setupProductionService(t)

	first := &model.ProductionOrder{ClientName: "A", OrderNumber: "ORD-200"}
	require.NoError(t, svc.CreateOrder(first, "u-1", "Kemal"))

	dup := &model.ProductionOrder{ClientName: "B", OrderNumber: "ORD-200"}
	assert.ErrorIs(t, svc.CreateOrder(dup, "u-1", "Kemal"), ErrOrderNumberExists)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := setupProductionService(t)

	order := &model.ProductionOrder{ClientName: "A", OrderNumber: "ORD-300"}
	require.NoError(t, svc.CreateOrder(order, "u-1", "Kemal"))

	_, err := svc.UpdateStatus(order.ID, "laminated", "u-1", "Kemal")
	assert.ErrorIs(t, err, ErrUnknownStatus, "aliases are display-only, never write targets")

	_, err = svc.UpdateStatus(order.ID, "made_up", "u-1", "Kemal")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatusAllowsAnyCatalogTransition(t *testing.T) {
	svc, _ := setupProductionService(t)

	order := &model.ProductionOrder{ClientName: "A", OrderNumber: "ORD-301"}
	require.NoError(t, svc.CreateOrder(order, "u-1", "Kemal"))

	// Backwards jumps are allowed, there is no transition matrix.
	updated, err := svc.UpdateStatus(order.ID, model.StatusPackaging, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPackaging, updated.Status)

	updated, err = svc.UpdateStatus(order.ID, model.StatusCutting, "u-1", "Kemal")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCutting, updated.Status)
}

func TestGetOrdersPartitionsAndSorts(t *testing.T) {
	svc, _ := setupProductionService(t)

	later := &model.ProductionOrder{
		ClientName: "Later", OrderNumber: "ORD-402",
		DueDate: time.Date(2026, time.July, 20, 0, 0, 0, 0, time.Local),
	}
	sooner := &model.ProductionOrder{
		ClientName: "Sooner", OrderNumber: "ORD-401",
		DueDate: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.Local),
	}
	done := &model.ProductionOrder{
		ClientName: "Done", OrderNumber: "ORD-400",
		Status: model.StatusCompleted,
	}
	for _, o := range []*model.ProductionOrder{later, sooner, done} {
		require.NoError(t, svc.CreateOrder(o, "u-1", "Kemal"))
	}

	view, err := svc.GetOrders("")
	require.NoError(t, err)

	require.Len(t, view.Active, 2)
	assert.Equal(t, "ORD-401", view.Active[0].OrderNumber, "active sorts soonest due date first")
	assert.Equal(t, "ORD-402", view.Active[1].OrderNumber)

	require.Len(t, view.History, 1)
	assert.Equal(t, "ORD-400", view.History[0].OrderNumber)
}

func TestGetOrdersSearchFilter(t *testing.T) {
	svc, _ := setupProductionService(t)

	a := &model.ProductionOrder{ClientName: "Glaserei Nordwind", OrderNumber: "ORD-500"}
	b := &model.ProductionOrder{ClientName: "Bauglas Mitte", OrderNumber: "ORD-501"}
	require.NoError(t, svc.CreateOrder(a, "u-1", "Kemal"))
	require.NoError(t, svc.CreateOrder(b, "u-1", "Kemal"))

	view, err := svc.GetOrders("nordwind")
	require.NoError(t, err)
	assert.Len(t, view.Active, 1)
	assert.Equal(t, "Glaserei Nordwind", view.Active[0].ClientName)
}
