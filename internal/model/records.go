package model

import "time"

// MaintenanceRecord tracks scheduled and performed machine maintenance.
type MaintenanceRecord struct {
	BaseModel
	MachineName   string     `gorm:"type:varchar(255);not null" json:"machine_name" validate:"required"`
	Description   string     `gorm:"type:text" json:"description"`
	Status        string     `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	ScheduledDate time.Time  `gorm:"type:date;not null" json:"scheduled_date" validate:"required"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func (MaintenanceRecord) Kind() EntityKind { return KindMaintenance }

func (m MaintenanceRecord) CurrentStatus() string { return m.Status }

func (m MaintenanceRecord) EffectiveAt() (time.Time, bool) {
	if m.ScheduledDate.IsZero() {
		return time.Time{}, false
	}
	return m.ScheduledDate, true
}

func (m MaintenanceRecord) HistoryAt() (time.Time, bool) {
	if m.CompletedAt != nil {
		return *m.CompletedAt, true
	}
	if !m.CreatedAt.IsZero() {
		return m.CreatedAt, true
	}
	return m.EffectiveAt()
}

func (m MaintenanceRecord) SearchFields() []string {
	return []string{m.MachineName, m.Description}
}

// TrainingRecord tracks employee training sessions and certifications.
type TrainingRecord struct {
	BaseModel
	EmployeeName  string     `gorm:"type:varchar(255);not null" json:"employee_name" validate:"required"`
	Topic         string     `gorm:"type:varchar(255);not null" json:"topic" validate:"required"`
	Status        string     `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	ScheduledDate time.Time  `gorm:"type:date;not null" json:"scheduled_date" validate:"required"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func (TrainingRecord) Kind() EntityKind { return KindTraining }

func (t TrainingRecord) CurrentStatus() string { return t.Status }

func (t TrainingRecord) EffectiveAt() (time.Time, bool) {
	if t.ScheduledDate.IsZero() {
		return time.Time{}, false
	}
	return t.ScheduledDate, true
}

func (t TrainingRecord) HistoryAt() (time.Time, bool) {
	if t.CompletedAt != nil {
		return *t.CompletedAt, true
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt, true
	}
	return t.EffectiveAt()
}

func (t TrainingRecord) SearchFields() []string {
	return []string{t.EmployeeName, t.Topic}
}
