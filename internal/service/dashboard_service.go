package service

import (
	"time"

	"go-glassfloor-ws/internal/repository"
)

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetStockMovement(days int) ([]repository.StockMovementData, error)
}

// DashboardStats is the overview card row on the home screen.
type DashboardStats struct {
	TotalItems       int64 `json:"total_items"`
	LowStockCount    int64 `json:"low_stock_count"`
	ActiveOrders     int64 `json:"active_orders"`
	ActiveWorkOrders int64 `json:"active_work_orders"`
}

type dashboardService struct {
	invRepo  repository.InventoryRepository
	prodRepo repository.ProductionOrderRepository
	workRepo repository.WorkOrderRepository
}

func NewDashboardService(invRepo repository.InventoryRepository, prodRepo repository.ProductionOrderRepository, workRepo repository.WorkOrderRepository) DashboardService {
	return &dashboardService{
		invRepo:  invRepo,
		prodRepo: prodRepo,
		workRepo: workRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalItems, err = s.invRepo.CountItems(); err != nil {
		return nil, err
	}
	if stats.LowStockCount, err = s.invRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if stats.ActiveOrders, err = s.prodRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.ActiveWorkOrders, err = s.workRepo.CountActive(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.invRepo.GetStockMovement(startDate, endDate)
}
