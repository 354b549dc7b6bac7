package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkOrderRepository interface {
	Create(order *model.WorkOrder) error
	FindAll() ([]model.WorkOrder, error)
	FindByID(id uuid.UUID) (*model.WorkOrder, error)
	Update(order *model.WorkOrder) error
	UpdateStatus(id uuid.UUID, status, updatedBy string) error
	Delete(id uuid.UUID) error
	CountActive() (int64, error)
}

type workOrderRepo struct {
	db *gorm.DB
}

func NewWorkOrderRepo(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepo{db}
}

func (r *workOrderRepo) Create(order *model.WorkOrder) error {
	return r.db.Create(order).Error
}

func (r *workOrderRepo) FindAll() ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *workOrderRepo) FindByID(id uuid.UUID) (*model.WorkOrder, error) {
	var order model.WorkOrder
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *workOrderRepo) Update(order *model.WorkOrder) error {
	return r.db.Save(order).Error
}

func (r *workOrderRepo) UpdateStatus(id uuid.UUID, status, updatedBy string) error {
	return r.db.Model(&model.WorkOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *workOrderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.WorkOrder{}, "id = ?", id).Error
}

func (r *workOrderRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.WorkOrder{}).
		Where("status NOT IN ?", []string{model.WorkStatusCompleted, model.WorkStatusCancelled}).
		Count(&count).Error
	return count, err
}
