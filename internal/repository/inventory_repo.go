package repository

import (
	"time"

	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	CreateItem(item *model.InventoryItem) error
	FindAllItems() ([]model.InventoryItem, error)
	FindItemsByGroup(groupID uuid.UUID) ([]model.InventoryItem, error)
	FindItemsBySupplier(supplier string) ([]model.InventoryItem, error)
	FindItemByID(id uuid.UUID) (*model.InventoryItem, error)
	UpdateItem(item *model.InventoryItem) error
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error
	DeleteItem(id uuid.UUID) error

	CreateGroup(group *model.InventoryGroup) error
	FindAllGroups() ([]model.InventoryGroup, error)

	HistoryForItem(itemID uuid.UUID) ([]model.InventoryHistory, error)
	FindAllHistory() ([]model.InventoryHistory, error)

	CountItems() (int64, error)
	CountLowStock() (int64, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData aggregates ledger deltas per day for the dashboard chart.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) CreateItem(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) FindAllItems() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Group").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindItemsByGroup(groupID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Group").Where("group_id = ?", groupID).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindItemsBySupplier(supplier string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Group").Where("supplier = ?", supplier).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindItemByID(id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Preload("Group").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) UpdateItem(item *model.InventoryItem) error {
	return r.db.Save(item).Error
}

// UpdateStock takes the caller's *gorm.DB so it can run inside the
// adjustment transaction next to the history append.
func (r *inventoryRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error {
	return tx.Model(&model.InventoryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":      newStock,
			"updated_by": updatedBy,
		}).Error
}

func (r *inventoryRepo) DeleteItem(id uuid.UUID) error {
	return r.db.Delete(&model.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepo) CreateGroup(group *model.InventoryGroup) error {
	return r.db.Create(group).Error
}

func (r *inventoryRepo) FindAllGroups() ([]model.InventoryGroup, error) {
	var groups []model.InventoryGroup
	err := r.db.Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *inventoryRepo) HistoryForItem(itemID uuid.UUID) ([]model.InventoryHistory, error) {
	var entries []model.InventoryHistory
	err := r.db.Where("item_id = ?", itemID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *inventoryRepo) FindAllHistory() ([]model.InventoryHistory, error) {
	var entries []model.InventoryHistory
	err := r.db.Preload("Item").Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *inventoryRepo) CountItems() (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryItem{}).Count(&count).Error
	return count, err
}

func (r *inventoryRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryItem{}).
		Where("stock <= low_stock_threshold").
		Count(&count).Error
	return count, err
}

func (r *inventoryRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.InventoryHistory{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN delta > 0 THEN delta ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN delta < 0 THEN -delta ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
