// Package report builds the structured documents behind the export screens.
// Assembly is a pure projection over already-filtered data; the rendering
// layer (PDF, print view) lives outside this service.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-glassfloor-ws/internal/model"
)

// ErrEmptyReport is returned when a report is requested over zero items.
// Callers present a "no items" message instead of an empty document.
var ErrEmptyReport = errors.New("cannot build a report from an empty item list")

// Placeholder stands in for any missing optional value in a report cell.
const Placeholder = "-"

// Meta identifies one generated report.
type Meta struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	ClientName  string    `json:"client_name,omitempty"`
}

// Row is one printable line of the inventory report.
type Row struct {
	Index          int    `json:"index"`
	Reference      string `json:"reference"`
	Description    string `json:"description"`
	DimensionsText string `json:"dimensions_text"`
	Stock          int    `json:"stock"`
	Unit           string `json:"unit"`
	TotalAreaText  string `json:"total_area_text"`
	Location       string `json:"location"`
}

// InventoryReport is the assembled document: meta plus one row per item, in
// input order.
type InventoryReport struct {
	Meta Meta  `json:"meta"`
	Rows []Row `json:"rows"`
}

// BuildInventoryReport projects a pre-filtered item list into a report.
// Missing optional fields degrade to the "-" placeholder; only an empty item
// list is an error. The input is never mutated.
func BuildInventoryReport(items []model.InventoryItem, meta Meta) (*InventoryReport, error) {
	if len(items) == 0 {
		return nil, ErrEmptyReport
	}

	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{
			Index:          i + 1,
			Reference:      referenceFor(item),
			Description:    item.Name,
			DimensionsText: dimensionsText(item),
			Stock:          item.Stock,
			Unit:           item.Unit,
			TotalAreaText:  totalAreaText(item),
			Location:       valueOr(item.Location, Placeholder),
		}
	}

	return &InventoryReport{Meta: meta, Rows: rows}, nil
}

// referenceFor prefers the explicit reference number and falls back to the
// first 8 characters of the item id, uppercased.
func referenceFor(item model.InventoryItem) string {
	if item.ReferenceNumber != "" {
		return item.ReferenceNumber
	}
	id := item.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// dimensionsText renders "Wmm × Hmm × Tmm", or "-" when any dimension is
// missing.
func dimensionsText(item model.InventoryItem) string {
	if item.WidthMM == nil || item.HeightMM == nil || item.ThicknessMM == nil {
		return Placeholder
	}
	return fmt.Sprintf("%smm × %smm × %smm",
		formatMM(*item.WidthMM), formatMM(*item.HeightMM), formatMM(*item.ThicknessMM))
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// totalAreaText is the sheet area times the stock count, two decimals, or
// "-" when the area is unknown.
func totalAreaText(item model.InventoryItem) string {
	if item.TotalM2 == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", *item.TotalM2*float64(item.Stock))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
