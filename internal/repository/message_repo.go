package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *model.BroadcastMessage) error
	FindAll() ([]model.BroadcastMessage, error)
	FindByID(id uuid.UUID) (*model.BroadcastMessage, error)
	Delete(id uuid.UUID) error
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db}
}

func (r *messageRepo) Create(message *model.BroadcastMessage) error {
	return r.db.Create(message).Error
}

func (r *messageRepo) FindAll() ([]model.BroadcastMessage, error) {
	var messages []model.BroadcastMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *messageRepo) FindByID(id uuid.UUID) (*model.BroadcastMessage, error) {
	var message model.BroadcastMessage
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.BroadcastMessage{}, "id = ?", id).Error
}
