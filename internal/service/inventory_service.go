package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/report"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/workflow"
	"go-glassfloor-ws/internal/ws"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("adjustment would drive stock negative")
)

type InventoryService interface {
	CreateItem(req *model.InventoryItem, userID string) error
	UpdateItem(id uuid.UUID, req *model.InventoryItem, userID string) (*model.InventoryItem, error)
	DeleteItem(id uuid.UUID) error
	GetItem(id uuid.UUID) (*InventoryItemView, error)
	GetItems(search string) ([]InventoryItemView, error)
	CreateGroup(group *model.InventoryGroup, userID string) error
	GetGroups() ([]model.InventoryGroup, error)

	AdjustStock(id uuid.UUID, delta int, userID, userName string) (*model.InventoryItem, error)
	SetStockCount(id uuid.UUID, newValue int, userID, userName string) (*model.InventoryItem, error)
	GetItemHistory(itemID uuid.UUID) ([]model.InventoryHistory, error)

	BuildReport(filter ReportFilter) (*report.InventoryReport, error)
}

// InventoryItemView decorates an item with the derived low-stock flag. The
// flag is computed per read and never persisted.
type InventoryItemView struct {
	model.InventoryItem
	LowStock bool `json:"low_stock"`
}

// ReportFilter narrows the report to one supplier or group before assembly.
type ReportFilter struct {
	Supplier   string     `json:"supplier,omitempty"`
	GroupID    *uuid.UUID `json:"group_id,omitempty"`
	ClientName string     `json:"client_name,omitempty"`
}

type inventoryService struct {
	invRepo repository.InventoryRepository
	db      *gorm.DB
	wsHub   *ws.Hub
}

func NewInventoryService(invRepo repository.InventoryRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		invRepo: invRepo,
		db:      db,
		wsHub:   hub,
	}
}

func (s *inventoryService) CreateItem(req *model.InventoryItem, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.invRepo.CreateItem(req)
}

// UpdateItem changes item metadata only. The stock value moves exclusively
// through AdjustStock/SetStockCount so every change lands in the ledger.
func (s *inventoryService) UpdateItem(id uuid.UUID, req *model.InventoryItem, userID string) (*model.InventoryItem, error) {
	existing, err := s.invRepo.FindItemByID(id)
	if err != nil {
		return nil, ErrItemNotFound
	}

	existing.Name = req.Name
	existing.GroupID = req.GroupID
	existing.LowStockThreshold = req.LowStockThreshold
	existing.Unit = req.Unit
	existing.HeightMM = req.HeightMM
	existing.WidthMM = req.WidthMM
	existing.ThicknessMM = req.ThicknessMM
	existing.TotalM2 = req.TotalM2
	existing.Supplier = req.Supplier
	existing.Location = req.Location
	existing.ReferenceNumber = req.ReferenceNumber
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.invRepo.UpdateItem(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *inventoryService) DeleteItem(id uuid.UUID) error {
	if _, err := s.invRepo.FindItemByID(id); err != nil {
		return ErrItemNotFound
	}
	return s.invRepo.DeleteItem(id)
}

func (s *inventoryService) GetItem(id uuid.UUID) (*InventoryItemView, error) {
	item, err := s.invRepo.FindItemByID(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return &InventoryItemView{InventoryItem: *item, LowStock: item.IsLowStock()}, nil
}

func (s *inventoryService) GetItems(search string) ([]InventoryItemView, error) {
	items, err := s.invRepo.FindAllItems()
	if err != nil {
		return nil, err
	}

	items = workflow.FilterBySearch(items, search, model.InventoryItem.SearchFields)

	views := make([]InventoryItemView, len(items))
	for i, item := range items {
		views[i] = InventoryItemView{InventoryItem: item, LowStock: item.IsLowStock()}
	}
	return views, nil
}

func (s *inventoryService) CreateGroup(group *model.InventoryGroup, userID string) error {
	if errs := validator.ValidateStruct(group); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	group.CreatedBy = userID
	group.UpdatedBy = userID
	return s.invRepo.CreateGroup(group)
}

func (s *inventoryService) GetGroups() ([]model.InventoryGroup, error) {
	return s.invRepo.FindAllGroups()
}

// AdjustStock moves the stock value by delta (which may be negative) and
// appends exactly one ledger row, both inside a single transaction.
func (s *inventoryService) AdjustStock(id uuid.UUID, delta int, userID, userName string) (*model.InventoryItem, error) {
	return s.writeStock(id, userID, userName, model.HistoryActionAdjust, func(current int) int {
		return current + delta
	})
}

// SetStockCount overwrites the stock value with the result of a physical
// count. The ledger row records the implied delta.
func (s *inventoryService) SetStockCount(id uuid.UUID, newValue int, userID, userName string) (*model.InventoryItem, error) {
	return s.writeStock(id, userID, userName, model.HistoryActionCount, func(int) int {
		return newValue
	})
}

func (s *inventoryService) writeStock(id uuid.UUID, userID, userName, action string, next func(current int) int) (*model.InventoryItem, error) {
	var (
		updated  *model.InventoryItem
		previous int
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.InventoryItem
		q := tx
		// SQLite (used by the test databases) has no row locks.
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&item, "id = ?", id).Error; err != nil {
			return ErrItemNotFound
		}

		previous = item.Stock
		newStock := next(previous)
		if newStock < 0 {
			return ErrInsufficientStock
		}

		if err := s.invRepo.UpdateStock(tx, item.ID, newStock, userID); err != nil {
			return err
		}

		entry := &model.InventoryHistory{
			ItemID:        item.ID,
			PreviousValue: previous,
			NewValue:      newStock,
			Delta:         newStock - previous,
			Action:        action,
		}
		entry.CreatedBy = userID
		entry.UpdatedBy = userID
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		item.Stock = newStock
		updated = &item
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Push only after the transaction has committed, so clients never see a
	// stock value that was rolled back.
	go s.broadcastStockUpdate(updated, previous, userName)
	return updated, nil
}

func (s *inventoryService) GetItemHistory(itemID uuid.UUID) ([]model.InventoryHistory, error) {
	if _, err := s.invRepo.FindItemByID(itemID); err != nil {
		return nil, ErrItemNotFound
	}
	return s.invRepo.HistoryForItem(itemID)
}

// BuildReport assembles the inventory export for the current filter. An
// empty result set surfaces report.ErrEmptyReport so the UI can show a
// "no items" message instead of a blank document.
func (s *inventoryService) BuildReport(filter ReportFilter) (*report.InventoryReport, error) {
	var (
		items []model.InventoryItem
		err   error
	)
	switch {
	case filter.GroupID != nil:
		items, err = s.invRepo.FindItemsByGroup(*filter.GroupID)
	case filter.Supplier != "":
		items, err = s.invRepo.FindItemsBySupplier(filter.Supplier)
	default:
		items, err = s.invRepo.FindAllItems()
	}
	if err != nil {
		return nil, err
	}

	meta := report.Meta{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now(),
		ClientName:  filter.ClientName,
	}
	return report.BuildInventoryReport(items, meta)
}

func (s *inventoryService) broadcastStockUpdate(item *model.InventoryItem, oldStock int, userName string) {
	payload := map[string]interface{}{
		"type":   "stock_update",
		"action": "stock_adjusted",
		"item": map[string]interface{}{
			"id":        item.ID,
			"name":      item.Name,
			"old_stock": oldStock,
			"new_stock": item.Stock,
			"low_stock": item.IsLowStock(),
		},
		"message": fmt.Sprintf("%s adjusted stock of '%s' (%d -> %d)", userName, item.Name, oldStock, item.Stock),
	}
	msg, _ := json.Marshal(payload)
	s.wsHub.Broadcast <- msg
}
