package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/workflow"
	"go-glassfloor-ws/internal/ws"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("production order not found")
	ErrOrderNumberExists = errors.New("order number already exists")
	ErrUnknownStatus     = errors.New("status is not a valid catalog value")
)

type ProductionService interface {
	CreateOrder(req *model.ProductionOrder, userID, userName string) error
	UpdateOrder(id uuid.UUID, req *model.ProductionOrder, userID string) (*model.ProductionOrder, error)
	UpdateStatus(id uuid.UUID, status, userID, userName string) (*model.ProductionOrder, error)
	DeleteOrder(id uuid.UUID) error
	GetOrder(id uuid.UUID) (*model.ProductionOrder, error)
	GetOrders(search string) (*ProductionListView, error)
}

// ProductionListView is the partitioned list behind the production screens.
// The split is derived from the status field on every read, never stored.
type ProductionListView struct {
	Active  []model.ProductionOrder `json:"active"`
	History []model.ProductionOrder `json:"history"`
}

type productionService struct {
	orderRepo repository.ProductionOrderRepository
	wsHub     *ws.Hub
}

func NewProductionService(orderRepo repository.ProductionOrderRepository, hub *ws.Hub) ProductionService {
	return &productionService{
		orderRepo: orderRepo,
		wsHub:     hub,
	}
}

func (s *productionService) CreateOrder(req *model.ProductionOrder, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Status == "" {
		req.Status = model.StatusNotAuthorized
	}
	// Deprecated aliases are display-only; new records never store one.
	if !model.IsValidStatus(model.KindProductionOrder, req.Status) {
		return ErrUnknownStatus
	}

	existing, _ := s.orderRepo.FindByOrderNumber(req.OrderNumber)
	if existing != nil {
		return ErrOrderNumberExists
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.orderRepo.Create(req); err != nil {
		return err
	}

	s.broadcastOrderUpdate("order_created", req, userName)
	return nil
}

func (s *productionService) UpdateOrder(id uuid.UUID, req *model.ProductionOrder, userID string) (*model.ProductionOrder, error) {
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if req.OrderNumber != existing.OrderNumber {
		dup, _ := s.orderRepo.FindByOrderNumber(req.OrderNumber)
		if dup != nil {
			return nil, ErrOrderNumberExists
		}
	}

	existing.ClientName = req.ClientName
	existing.OrderNumber = req.OrderNumber
	existing.OrderType = req.OrderType
	existing.DueDate = req.DueDate
	existing.Notes = req.Notes
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.orderRepo.Update(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// UpdateStatus writes the new pipeline status. Any catalog value may replace
// any other; there is deliberately no transition matrix (current product
// behavior). Deprecated aliases are rejected as write targets.
func (s *productionService) UpdateStatus(id uuid.UUID, status, userID, userName string) (*model.ProductionOrder, error) {
	if !model.IsValidStatus(model.KindProductionOrder, status) {
		return nil, ErrUnknownStatus
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(id, status, userID); err != nil {
		return nil, err
	}
	order.Status = status

	s.broadcastOrderUpdate("status_changed", order, userName)
	return order, nil
}

func (s *productionService) DeleteOrder(id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(id)
}

func (s *productionService) GetOrder(id uuid.UUID) (*model.ProductionOrder, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrders returns the active and history buckets, searched then sorted:
// active by due date ascending (soonest first), history by creation date
// descending (most recent first).
func (s *productionService) GetOrders(search string) (*ProductionListView, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	orders = workflow.FilterBySearch(orders, search, model.ProductionOrder.SearchFields)
	active, history := workflow.Partition(orders)

	return &ProductionListView{
		Active:  workflow.SortActive(active),
		History: workflow.SortHistory(history),
	}, nil
}

func (s *productionService) broadcastOrderUpdate(action string, order *model.ProductionOrder, userName string) {
	go func() {
		payload := map[string]interface{}{
			"type":   "production_update",
			"action": action,
			"order": map[string]interface{}{
				"id":           order.ID,
				"order_number": order.OrderNumber,
				"client_name":  order.ClientName,
				"status":       order.Status,
				"status_label": model.LabelFor(model.KindProductionOrder, order.Status),
			},
			"message": fmt.Sprintf("%s: order %s is now %s", userName, order.OrderNumber,
				model.LabelFor(model.KindProductionOrder, order.Status)),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
