package model

import (
	"log"
	"time"
)

// WorkOrder is a scheduled service job (installation, repair, measurement
// visit). Its status catalog is independent from the production pipeline;
// the two are only merged in the combined calendar view.
type WorkOrder struct {
	BaseModel
	ClientName    string    `gorm:"type:varchar(255);not null" json:"client_name" validate:"required"`
	ServiceType   string    `gorm:"type:varchar(100)" json:"service_type"`
	Status        string    `gorm:"type:varchar(20);not null;default:'planned'" json:"status"`
	ScheduledDate time.Time `gorm:"type:date;not null" json:"scheduled_date" validate:"required"`
	ScheduledTime string    `gorm:"type:varchar(5)" json:"scheduled_time" validate:"omitempty,hhmm"` // HH:MM, optional
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
}

func (WorkOrder) Kind() EntityKind { return KindWorkOrder }

func (w WorkOrder) CurrentStatus() string { return w.Status }

// EffectiveAt combines the scheduled date and the optional HH:MM time into a
// single local instant. Missing time means start of day; an unparseable value
// reports false so the sort can push the record last instead of guessing.
func (w WorkOrder) EffectiveAt() (time.Time, bool) {
	return CombineDateTime(w.ScheduledDate, w.ScheduledTime)
}

func (w WorkOrder) HistoryAt() (time.Time, bool) {
	if !w.CreatedAt.IsZero() {
		return w.CreatedAt, true
	}
	return w.EffectiveAt()
}

func (w WorkOrder) SearchFields() []string {
	return []string{w.ClientName, w.ServiceType, w.Notes}
}

// CombineDateTime merges a date and an optional "HH:MM" wall-clock string
// into one local instant. An empty time falls back to "00:00".
func CombineDateTime(date time.Time, hhmm string) (time.Time, bool) {
	if date.IsZero() {
		return time.Time{}, false
	}
	if hhmm == "" {
		hhmm = "00:00"
	}
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		log.Printf("schedule: unparseable time %q, record will sort last", hhmm)
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), true
}
