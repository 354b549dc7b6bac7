package service

import (
	"errors"
	"fmt"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/workflow"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrWorkOrderNotFound = errors.New("work order not found")

type WorkOrderService interface {
	CreateOrder(req *model.WorkOrder, userID string) error
	UpdateOrder(id uuid.UUID, req *model.WorkOrder, userID string) (*model.WorkOrder, error)
	UpdateStatus(id uuid.UUID, status, userID string) (*model.WorkOrder, error)
	DeleteOrder(id uuid.UUID) error
	GetOrder(id uuid.UUID) (*model.WorkOrder, error)
	GetOrders(search string) (*WorkOrderListView, error)
}

type WorkOrderListView struct {
	Active  []model.WorkOrder `json:"active"`
	History []model.WorkOrder `json:"history"`
}

type workOrderService struct {
	orderRepo repository.WorkOrderRepository
}

func NewWorkOrderService(orderRepo repository.WorkOrderRepository) WorkOrderService {
	return &workOrderService{orderRepo: orderRepo}
}

func (s *workOrderService) CreateOrder(req *model.WorkOrder, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Status == "" {
		req.Status = model.WorkStatusPlanned
	}
	if !model.IsValidStatus(model.KindWorkOrder, req.Status) {
		return ErrUnknownStatus
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.orderRepo.Create(req)
}

func (s *workOrderService) UpdateOrder(id uuid.UUID, req *model.WorkOrder, userID string) (*model.WorkOrder, error) {
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrWorkOrderNotFound
	}

	existing.ClientName = req.ClientName
	existing.ServiceType = req.ServiceType
	existing.ScheduledDate = req.ScheduledDate
	existing.ScheduledTime = req.ScheduledTime
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

// UpdateStatus accepts any catalog value over any other; paused and
// cancelled orders can be reopened the same way. No transition matrix.
func (s *workOrderService) UpdateStatus(id uuid.UUID, status, userID string) (*model.WorkOrder, error) {
	if !model.IsValidStatus(model.KindWorkOrder, status) {
		return nil, ErrUnknownStatus
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrWorkOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(id, status, userID); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *workOrderService) DeleteOrder(id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return ErrWorkOrderNotFound
	}
	return s.orderRepo.Delete(id)
}

func (s *workOrderService) GetOrder(id uuid.UUID) (*model.WorkOrder, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrWorkOrderNotFound
	}
	return order, nil
}

// GetOrders splits work orders into active (planned/in progress/paused,
// scheduled soonest first) and history (completed/cancelled, most recent
// first).
func (s *workOrderService) GetOrders(search string) (*WorkOrderListView, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	orders = workflow.FilterBySearch(orders, search, model.WorkOrder.SearchFields)
	active, history := workflow.Partition(orders)

	return &WorkOrderListView{
		Active:  workflow.SortActive(active),
		History: workflow.SortHistory(history),
	}, nil
}
