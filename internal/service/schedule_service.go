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

var ErrEventNotFound = errors.New("event not found")

// ScheduleService owns the events screen and the combined calendar: events
// merged with the not-yet-finished work orders, one ascending timeline.
type ScheduleService interface {
	CreateEvent(req *model.Event, userID string) error
	UpdateEvent(id uuid.UUID, req *model.Event, userID string) (*model.Event, error)
	DeleteEvent(id uuid.UUID) error
	GetEvent(id uuid.UUID) (*model.Event, error)
	GetEvents(search string) ([]model.Event, error)
	GetCalendar(search string) ([]workflow.CalendarItem, error)
}

type scheduleService struct {
	eventRepo repository.EventRepository
	orderRepo repository.WorkOrderRepository
}

func NewScheduleService(eventRepo repository.EventRepository, orderRepo repository.WorkOrderRepository) ScheduleService {
	return &scheduleService{
		eventRepo: eventRepo,
		orderRepo: orderRepo,
	}
}

func (s *scheduleService) CreateEvent(req *model.Event, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.eventRepo.Create(req)
}

func (s *scheduleService) UpdateEvent(id uuid.UUID, req *model.Event, userID string) (*model.Event, error) {
	existing, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	existing.Title = req.Title
	existing.EventDate = req.EventDate
	existing.EventTime = req.EventTime
	existing.Location = req.Location
	existing.Notes = req.Notes
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.eventRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *scheduleService) DeleteEvent(id uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(id); err != nil {
		return ErrEventNotFound
	}
	return s.eventRepo.Delete(id)
}

func (s *scheduleService) GetEvent(id uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *scheduleService) GetEvents(search string) ([]model.Event, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, err
	}

	events = workflow.FilterBySearch(events, search, model.Event.SearchFields)
	return workflow.SortActive(events), nil
}

// GetCalendar merges events with the active work orders. Finished and
// cancelled work orders stay off the calendar; events have no lifecycle and
// always appear.
func (s *scheduleService) GetCalendar(search string) ([]workflow.CalendarItem, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	events = workflow.FilterBySearch(events, search, model.Event.SearchFields)
	orders = workflow.FilterBySearch(orders, search, model.WorkOrder.SearchFields)

	activeOrders, _ := workflow.Partition(orders)
	return workflow.MergeSchedule(events, activeOrders), nil
}
