package model

import "time"

// Event is a scheduled shop entry that is not a client job: deliveries,
// inspections, meetings. Events share the calendar view with work orders.
type Event struct {
	BaseModel
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	EventDate time.Time `gorm:"type:date;not null" json:"event_date" validate:"required"`
	EventTime string    `gorm:"type:varchar(5)" json:"event_time" validate:"omitempty,hhmm"` // HH:MM, optional
	Location  string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
}

func (Event) Kind() EntityKind { return KindEvent }

func (e Event) EffectiveAt() (time.Time, bool) {
	return CombineDateTime(e.EventDate, e.EventTime)
}

func (e Event) HistoryAt() (time.Time, bool) {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt, true
	}
	return e.EffectiveAt()
}

func (e Event) SearchFields() []string {
	return []string{e.Title, e.Location, e.Notes}
}
