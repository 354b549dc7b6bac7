package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductionOrder tracks one client order through the glass production
// pipeline. Status holds exactly one catalog value at a time; there is no
// stored transition history (known gap, see DESIGN.md).
type ProductionOrder struct {
	BaseModel
	ClientName  string           `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	OrderNumber string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number" validate:"required"`
	OrderType   string           `gorm:"type:varchar(100)" json:"order_type"`
	Status      string           `gorm:"type:varchar(50);not null;default:'not_authorized'" json:"status"`
	DueDate     time.Time        `gorm:"type:date" json:"due_date"`
	Notes       string           `gorm:"type:text" json:"notes,omitempty"`
	Items       []ProductionItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// ProductionItem is one glass piece (or batch of identical pieces) within an
// order. GlassID links to the inventory item the piece is cut from, when known.
type ProductionItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	GlassID     *uuid.UUID `gorm:"type:uuid" json:"glass_id,omitempty"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	Quantity    int        `gorm:"default:1" json:"quantity"`
	WidthMM     float64    `json:"width_mm,omitempty"`
	HeightMM    float64    `json:"height_mm,omitempty"`
	ThicknessMM float64    `json:"thickness_mm,omitempty"`
}

func (ProductionOrder) Kind() EntityKind { return KindProductionOrder }

func (o ProductionOrder) CurrentStatus() string { return o.Status }

// EffectiveAt is the instant used for active-view ordering. A zero due date
// means the order has no deadline and sorts last.
func (o ProductionOrder) EffectiveAt() (time.Time, bool) {
	if o.DueDate.IsZero() {
		return time.Time{}, false
	}
	return o.DueDate, true
}

// HistoryAt is the instant used for history-view ordering, most recent first.
func (o ProductionOrder) HistoryAt() (time.Time, bool) {
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt, true
	}
	return o.EffectiveAt()
}

// SearchFields returns the fallback-ordered fields the list search matches
// against.
func (o ProductionOrder) SearchFields() []string {
	fields := []string{o.ClientName, o.OrderNumber, o.OrderType}
	for _, item := range o.Items {
		fields = append(fields, item.Description)
	}
	return fields
}
