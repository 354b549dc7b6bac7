package model

// Broadcast message priorities. "blood" is the shop's emergency channel:
// a blood-priority message interrupts every connected client immediately.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityBlood  = "blood"
)

// BroadcastMessage is a persisted shop-wide announcement. The shape is
// explicit rather than a loose attachment map: Title, Body, and Priority are
// required; AttachmentURL is the single optional extra.
type BroadcastMessage struct {
	BaseModel
	Title         string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Body          string `gorm:"type:text;not null" json:"body" validate:"required"`
	Priority      string `gorm:"type:varchar(10);not null;default:'normal'" json:"priority" validate:"required,oneof=normal high blood"`
	AttachmentURL string `gorm:"type:text" json:"attachment_url,omitempty" validate:"omitempty,url"`
}

func (m BroadcastMessage) SearchFields() []string {
	return []string{m.Title, m.Body}
}
