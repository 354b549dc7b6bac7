package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(record *model.MaintenanceRecord) error
	FindAll() ([]model.MaintenanceRecord, error)
	FindByID(id uuid.UUID) (*model.MaintenanceRecord, error)
	Update(record *model.MaintenanceRecord) error
	Delete(id uuid.UUID) error
}

type maintenanceRepo struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db}
}

func (r *maintenanceRepo) Create(record *model.MaintenanceRecord) error {
	return r.db.Create(record).Error
}

func (r *maintenanceRepo) FindAll() ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.Find(&records).Error
	return records, err
}

func (r *maintenanceRepo) FindByID(id uuid.UUID) (*model.MaintenanceRecord, error) {
	var record model.MaintenanceRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *maintenanceRepo) Update(record *model.MaintenanceRecord) error {
	return r.db.Save(record).Error
}

func (r *maintenanceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.MaintenanceRecord{}, "id = ?", id).Error
}

type TrainingRepository interface {
	Create(record *model.TrainingRecord) error
	FindAll() ([]model.TrainingRecord, error)
	FindByID(id uuid.UUID) (*model.TrainingRecord, error)
	Update(record *model.TrainingRecord) error
	Delete(id uuid.UUID) error
}

type trainingRepo struct {
	db *gorm.DB
}

func NewTrainingRepo(db *gorm.DB) TrainingRepository {
	return &trainingRepo{db}
}

func (r *trainingRepo) Create(record *model.TrainingRecord) error {
	return r.db.Create(record).Error
}

func (r *trainingRepo) FindAll() ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	err := r.db.Find(&records).Error
	return records, err
}

func (r *trainingRepo) FindByID(id uuid.UUID) (*model.TrainingRecord, error) {
	var record model.TrainingRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *trainingRepo) Update(record *model.TrainingRecord) error {
	return r.db.Save(record).Error
}

func (r *trainingRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.TrainingRecord{}, "id = ?", id).Error
}
