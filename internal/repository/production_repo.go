package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionOrderRepository interface {
	Create(order *model.ProductionOrder) error
	FindAll() ([]model.ProductionOrder, error)
	FindByID(id uuid.UUID) (*model.ProductionOrder, error)
	FindByOrderNumber(orderNumber string) (*model.ProductionOrder, error)
	Update(order *model.ProductionOrder) error
	UpdateStatus(id uuid.UUID, status, updatedBy string) error
	Delete(id uuid.UUID) error
	CountActive() (int64, error)
}

type productionOrderRepo struct {
	db *gorm.DB
}

func NewProductionOrderRepo(db *gorm.DB) ProductionOrderRepository {
	return &productionOrderRepo{db}
}

func (r *productionOrderRepo) Create(order *model.ProductionOrder) error {
	return r.db.Create(order).Error
}

func (r *productionOrderRepo) FindAll() ([]model.ProductionOrder, error) {
	var orders []model.ProductionOrder
	err := r.db.Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *productionOrderRepo) FindByID(id uuid.UUID) (*model.ProductionOrder, error) {
	var order model.ProductionOrder
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *productionOrderRepo) FindByOrderNumber(orderNumber string) (*model.ProductionOrder, error) {
	var order model.ProductionOrder
	err := r.db.First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *productionOrderRepo) Update(order *model.ProductionOrder) error {
	return r.db.Save(order).Error
}

func (r *productionOrderRepo) UpdateStatus(id uuid.UUID, status, updatedBy string) error {
	return r.db.Model(&model.ProductionOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *productionOrderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ProductionOrder{}, "id = ?", id).Error
}

func (r *productionOrderRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductionOrder{}).
		Where("status <> ?", model.StatusCompleted).
		Count(&count).Error
	return count, err
}
