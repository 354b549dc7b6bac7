package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *model.Event) error
	FindAll() ([]model.Event, error)
	FindByID(id uuid.UUID) (*model.Event, error)
	Update(event *model.Event) error
	Delete(id uuid.UUID) error
}

type eventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db}
}

func (r *eventRepo) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepo) FindAll() ([]model.Event, error) {
	var events []model.Event
	err := r.db.Find(&events).Error
	return events, err
}

func (r *eventRepo) FindByID(id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) Update(event *model.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Event{}, "id = ?", id).Error
}
