package report

import (
	"testing"
	"time"

	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestBuildInventoryReportEmptyList(t *testing.T) {
	_, err := BuildInventoryReport(nil, Meta{})
	assert.ErrorIs(t, err, ErrEmptyReport)

	_, err = BuildInventoryReport([]model.InventoryItem{}, Meta{})
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestBuildInventoryReportRowPerItem(t *testing.T) {
	items := []model.InventoryItem{
		{Name: "Float glass 8mm", Stock: 12, Unit: "sheet"},
		{Name: "Suction cups", Stock: 4, Unit: "pcs"},
		{Name: "Edge sealant", Stock: 30, Unit: "tube"},
	}

	got, err := BuildInventoryReport(items, Meta{ReportID: "r-1", GeneratedAt: time.Now()})
	require.NoError(t, err)

	require.Len(t, got.Rows, len(items), "exactly one row per item, input order")
	for i, row := range got.Rows {
		assert.Equal(t, i+1, row.Index)
		assert.Equal(t, items[i].Name, row.Description)
		assert.Equal(t, items[i].Stock, row.Stock)
	}
}

func TestReportPlaceholders(t *testing.T) {
	items := []model.InventoryItem{{Name: "Bare item", Stock: 1}}

	got, err := BuildInventoryReport(items, Meta{})
	require.NoError(t, err)

	row := got.Rows[0]
	assert.Equal(t, Placeholder, row.DimensionsText)
	assert.Equal(t, Placeholder, row.TotalAreaText)
	assert.Equal(t, Placeholder, row.Location)
}

func TestReportReferenceFallsBackToID(t *testing.T) {
	withRef := model.InventoryItem{Name: "a", ReferenceNumber: "GL-0042"}
	withoutRef := model.InventoryItem{Name: "b"}
	withoutRef.ID = uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	got, err := BuildInventoryReport([]model.InventoryItem{withRef, withoutRef}, Meta{})
	require.NoError(t, err)

	assert.Equal(t, "GL-0042", got.Rows[0].Reference)
	assert.Equal(t, "A1B2C3D4", got.Rows[1].Reference)
}

func TestReportDimensionsText(t *testing.T) {
	tests := []struct {
		name string
		item model.InventoryItem
		want string
	}{
		{
			"all dimensions present",
			model.InventoryItem{WidthMM: f64(1200), HeightMM: f64(800), ThicknessMM: f64(8)},
			"1200mm × 800mm × 8mm",
		},
		{
			"fractional thickness keeps its precision",
			model.InventoryItem{WidthMM: f64(1200), HeightMM: f64(800), ThicknessMM: f64(6.5)},
			"1200mm × 800mm × 6.5mm",
		},
		{
			"one dimension missing",
			model.InventoryItem{WidthMM: f64(1200), HeightMM: f64(800)},
			Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.Name = "x"
			got, err := BuildInventoryReport([]model.InventoryItem{tt.item}, Meta{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Rows[0].DimensionsText)
		})
	}
}

func TestReportTotalArea(t *testing.T) {
	item := model.InventoryItem{Name: "Float glass", Stock: 3, TotalM2: f64(0.96)}

	got, err := BuildInventoryReport([]model.InventoryItem{item}, Meta{})
	require.NoError(t, err)

	assert.Equal(t, "2.88", got.Rows[0].TotalAreaText)
}

func TestReportMetaPassthrough(t *testing.T) {
	at := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	meta := Meta{ReportID: "rep-77", GeneratedAt: at, ClientName: "Glaserei Nordwind"}

	got, err := BuildInventoryReport([]model.InventoryItem{{Name: "x"}}, meta)
	require.NoError(t, err)

	assert.Equal(t, meta, got.Meta)
}
