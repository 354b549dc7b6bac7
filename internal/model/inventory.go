package model

import "github.com/google/uuid"

// InventoryGroup is a named bucket of stock items (glass types, hardware,
// consumables).
type InventoryGroup struct {
	BaseModel
	Name  string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Items []InventoryItem `gorm:"foreignKey:GroupID" json:"items,omitempty"`
}

// InventoryItem is one stock-counted article. The glass dimension fields and
// the supplier/location/reference fields are optional; every consumer must
// tolerate their absence.
type InventoryItem struct {
	BaseModel
	Name              string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	GroupID           *uuid.UUID      `gorm:"type:uuid;index" json:"group_id,omitempty"`
	Group             *InventoryGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Stock             int             `gorm:"default:0" json:"stock"`
	LowStockThreshold int             `gorm:"default:0" json:"low_stock_threshold"`
	Unit              string          `gorm:"type:varchar(20)" json:"unit"`

	// Glass dimensions (optional)
	HeightMM    *float64 `json:"height_mm,omitempty"`
	WidthMM     *float64 `json:"width_mm,omitempty"`
	ThicknessMM *float64 `json:"thickness_mm,omitempty"`
	TotalM2     *float64 `json:"total_m2,omitempty"` // area of one sheet

	Supplier        string `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	Location        string `gorm:"type:varchar(255)" json:"location,omitempty"`
	ReferenceNumber string `gorm:"type:varchar(50)" json:"reference_number,omitempty"`
}

// IsLowStock is a derived condition, never a stored flag: it is re-evaluated
// on every read. The boundary is inclusive, stock == threshold counts as low.
func (i *InventoryItem) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}

func (i InventoryItem) SearchFields() []string {
	return []string{i.Name, i.ReferenceNumber, i.Supplier, i.Location}
}

// Inventory history actions.
const (
	HistoryActionAdjust = "adjust"
	HistoryActionCount  = "count" // full stock count overwriting the value
)

// InventoryHistory is an append-only ledger entry, written exactly once per
// stock adjustment in the same transaction that moves the stock value.
// Rows are never updated or deleted.
type InventoryHistory struct {
	BaseModel
	ItemID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	Item          *InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	PreviousValue int            `gorm:"not null" json:"previous_value"`
	NewValue      int            `gorm:"not null" json:"new_value"`
	Delta         int            `gorm:"not null" json:"delta"` // NewValue - PreviousValue
	Action        string         `gorm:"type:varchar(20);not null" json:"action"`
}
