package workflow

import (
	"testing"
	"time"

	"go-glassfloor-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2026, time.April, day, 0, 0, 0, 0, time.Local)
}

func TestPartitionCoversInputExactly(t *testing.T) {
	orders := []model.ProductionOrder{
		{OrderNumber: "A-1", Status: model.StatusCutting},
		{OrderNumber: "A-2", Status: model.StatusCompleted},
		{OrderNumber: "A-3", Status: model.StatusNotAuthorized},
		{OrderNumber: "A-4", Status: model.StatusDelivered},
		{OrderNumber: "A-5", Status: model.StatusCompleted},
	}

	active, history := Partition(orders)

	assert.Len(t, active, 3)
	assert.Len(t, history, 2)
	assert.Equal(t, len(orders), len(active)+len(history), "partition must cover the input exactly")

	// Relative order survives within each bucket.
	assert.Equal(t, "A-1", active[0].OrderNumber)
	assert.Equal(t, "A-3", active[1].OrderNumber)
	assert.Equal(t, "A-4", active[2].OrderNumber)
	assert.Equal(t, "A-2", history[0].OrderNumber)
	assert.Equal(t, "A-5", history[1].OrderNumber)
}

func TestPartitionDeliveredIsStillActive(t *testing.T) {
	orders := []model.ProductionOrder{{OrderNumber: "B-1", Status: model.StatusDelivered}}

	active, history := Partition(orders)

	assert.Len(t, active, 1, "delivered is not terminal, only completed is")
	assert.Empty(t, history)
}

func TestPartitionWorkOrders(t *testing.T) {
	orders := []model.WorkOrder{
		{ClientName: "Mehta", Status: model.WorkStatusPlanned},
		{ClientName: "Osei", Status: model.WorkStatusCancelled},
		{ClientName: "Lindqvist", Status: model.WorkStatusCompleted},
	}

	active, history := Partition(orders)

	assert.Len(t, active, 1)
	assert.Len(t, history, 2)
}

func TestPartitionUnknownStatusStaysActive(t *testing.T) {
	orders := []model.ProductionOrder{{OrderNumber: "C-1", Status: "legacy_value"}}

	active, history := Partition(orders)

	assert.Len(t, active, 1, "unmigrated status must not hide a record in history")
	assert.Empty(t, history)
}

func TestSortActiveSoonestFirst(t *testing.T) {
	orders := []model.ProductionOrder{
		{OrderNumber: "D-1", DueDate: date(20)},
		{OrderNumber: "D-2", DueDate: date(5)},
		{OrderNumber: "D-3", DueDate: date(12)},
	}

	sorted := SortActive(orders)

	assert.Equal(t, []string{"D-2", "D-3", "D-1"},
		[]string{sorted[0].OrderNumber, sorted[1].OrderNumber, sorted[2].OrderNumber})
	// Input untouched.
	assert.Equal(t, "D-1", orders[0].OrderNumber)
}

func TestSortActiveUnparseableDatesLast(t *testing.T) {
	orders := []model.WorkOrder{
		{ClientName: "no date at all"},
		{ClientName: "bad time", ScheduledDate: date(3), ScheduledTime: "nonsense"},
		{ClientName: "fine", ScheduledDate: date(10), ScheduledTime: "08:00"},
	}

	sorted := SortActive(orders)

	assert.Equal(t, "fine", sorted[0].ClientName)
	// Undated records keep their relative order at the tail.
	assert.Equal(t, "no date at all", sorted[1].ClientName)
	assert.Equal(t, "bad time", sorted[2].ClientName)
}

func TestSortHistoryMostRecentFirst(t *testing.T) {
	old := model.ProductionOrder{OrderNumber: "E-1"}
	old.CreatedAt = date(1)
	recent := model.ProductionOrder{OrderNumber: "E-2"}
	recent.CreatedAt = date(25)
	undated := model.ProductionOrder{OrderNumber: "E-3"}

	sorted := SortHistory([]model.ProductionOrder{old, undated, recent})

	assert.Equal(t, "E-2", sorted[0].OrderNumber)
	assert.Equal(t, "E-1", sorted[1].OrderNumber)
	assert.Equal(t, "E-3", sorted[2].OrderNumber, "records without a date sort last even descending")
}

func TestMergeSchedule(t *testing.T) {
	events := []model.Event{
		{Title: "Glass delivery", EventDate: date(8), EventTime: "11:00"},
		{Title: "Safety inspection", EventDate: date(2)},
	}
	orders := []model.WorkOrder{
		{ClientName: "Fontaine", ScheduledDate: date(5), ScheduledTime: "14:00"},
	}

	merged := MergeSchedule(events, orders)

	assert.Len(t, merged, 3)
	assert.Equal(t, model.KindEvent, merged[0].Kind)
	assert.Equal(t, "Safety inspection", merged[0].Event.Title)
	assert.Equal(t, model.KindWorkOrder, merged[1].Kind)
	assert.Equal(t, "Fontaine", merged[1].WorkOrder.ClientName)
	assert.Equal(t, "Glass delivery", merged[2].Event.Title)
}

func TestMergeScheduleEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeSchedule(nil, nil))
}

func TestFilterBySearch(t *testing.T) {
	orders := []model.ProductionOrder{
		{ClientName: "Glaserei Nordwind", OrderNumber: "ORD-100"},
		{ClientName: "Fenster Krause", OrderNumber: "ORD-200"},
		{ClientName: "Bauglas Mitte", OrderNumber: "ORD-310", Items: []model.ProductionItem{
			{Description: "Shower panel 8mm"},
		}},
	}
	fields := model.ProductionOrder.SearchFields

	t.Run("case insensitive substring", func(t *testing.T) {
		got := FilterBySearch(orders, "KRAUSE", fields)
		assert.Len(t, got, 1)
		assert.Equal(t, "Fenster Krause", got[0].ClientName)
	})

	t.Run("matches item descriptions", func(t *testing.T) {
		got := FilterBySearch(orders, "shower", fields)
		assert.Len(t, got, 1)
		assert.Equal(t, "Bauglas Mitte", got[0].ClientName)
	})

	t.Run("matches order number", func(t *testing.T) {
		got := FilterBySearch(orders, "ord-1", fields)
		assert.Len(t, got, 1)
	})

	t.Run("empty term returns input unfiltered", func(t *testing.T) {
		assert.Len(t, FilterBySearch(orders, "", fields), 3)
		assert.Len(t, FilterBySearch(orders, "   ", fields), 3)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterBySearch(orders, "zzz", fields))
	})
}
