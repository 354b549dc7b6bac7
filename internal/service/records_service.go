package service

import (
	"errors"
	"fmt"
	"time"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/workflow"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordsService covers the maintenance and training screens. Both share
// the same lifecycle mechanics: catalog statuses, active/history partition,
// CompletedAt stamped when a record reaches a terminal state.
type RecordsService interface {
	CreateMaintenance(req *model.MaintenanceRecord, userID string) error
	UpdateMaintenanceStatus(id uuid.UUID, status, userID string) (*model.MaintenanceRecord, error)
	DeleteMaintenance(id uuid.UUID) error
	GetMaintenance(search string) (*MaintenanceListView, error)

	CreateTraining(req *model.TrainingRecord, userID string) error
	UpdateTrainingStatus(id uuid.UUID, status, userID string) (*model.TrainingRecord, error)
	DeleteTraining(id uuid.UUID) error
	GetTraining(search string) (*TrainingListView, error)
}

type MaintenanceListView struct {
	Active  []model.MaintenanceRecord `json:"active"`
	History []model.MaintenanceRecord `json:"history"`
}

type TrainingListView struct {
	Active  []model.TrainingRecord `json:"active"`
	History []model.TrainingRecord `json:"history"`
}

type recordsService struct {
	maintRepo repository.MaintenanceRepository
	trainRepo repository.TrainingRepository
}

func NewRecordsService(maintRepo repository.MaintenanceRepository, trainRepo repository.TrainingRepository) RecordsService {
	return &recordsService{
		maintRepo: maintRepo,
		trainRepo: trainRepo,
	}
}

func (s *recordsService) CreateMaintenance(req *model.MaintenanceRecord, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Status == "" {
		req.Status = model.MaintStatusScheduled
	}
	if !model.IsValidStatus(model.KindMaintenance, req.Status) {
		return ErrUnknownStatus
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.maintRepo.Create(req)
}

func (s *recordsService) UpdateMaintenanceStatus(id uuid.UUID, status, userID string) (*model.MaintenanceRecord, error) {
	if !model.IsValidStatus(model.KindMaintenance, status) {
		return nil, ErrUnknownStatus
	}

	record, err := s.maintRepo.FindByID(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	record.Status = status
	record.UpdatedBy = userID
	if model.IsTerminal(model.KindMaintenance, status) && record.CompletedAt == nil {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := s.maintRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordsService) DeleteMaintenance(id uuid.UUID) error {
	if _, err := s.maintRepo.FindByID(id); err != nil {
		return ErrRecordNotFound
	}
	return s.maintRepo.Delete(id)
}

func (s *recordsService) GetMaintenance(search string) (*MaintenanceListView, error) {
	records, err := s.maintRepo.FindAll()
	if err != nil {
		return nil, err
	}

	records = workflow.FilterBySearch(records, search, model.MaintenanceRecord.SearchFields)
	active, history := workflow.Partition(records)

	return &MaintenanceListView{
		Active:  workflow.SortActive(active),
		History: workflow.SortHistory(history),
	}, nil
}

func (s *recordsService) CreateTraining(req *model.TrainingRecord, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Status == "" {
		req.Status = model.TrainStatusScheduled
	}
	if !model.IsValidStatus(model.KindTraining, req.Status) {
		return ErrUnknownStatus
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.trainRepo.Create(req)
}

func (s *recordsService) UpdateTrainingStatus(id uuid.UUID, status, userID string) (*model.TrainingRecord, error) {
	if !model.IsValidStatus(model.KindTraining, status) {
		return nil, ErrUnknownStatus
	}

	record, err := s.trainRepo.FindByID(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	record.Status = status
	record.UpdatedBy = userID
	if model.IsTerminal(model.KindTraining, status) && record.CompletedAt == nil {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := s.trainRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordsService) DeleteTraining(id uuid.UUID) error {
	if _, err := s.trainRepo.FindByID(id); err != nil {
		return ErrRecordNotFound
	}
	return s.trainRepo.Delete(id)
}

func (s *recordsService) GetTraining(search string) (*TrainingListView, error) {
	records, err := s.trainRepo.FindAll()
	if err != nil {
		return nil, err
	}

	records = workflow.FilterBySearch(records, search, model.TrainingRecord.SearchFields)
	active, history := workflow.Partition(records)

	return &TrainingListView{
		Active:  workflow.SortActive(active),
		History: workflow.SortHistory(history),
	}, nil
}
