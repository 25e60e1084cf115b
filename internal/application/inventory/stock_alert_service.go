package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
)

// StockAlertService handles low-stock alert operations.
//
// Alerts are created by the StockBelowMinimumHandler reacting to ledger
// events; this service covers the operator-facing side: listing, counting
// and moving alerts through their lifecycle.
type StockAlertService struct {
	txScope   TransactionScope
	alertRepo inventory.StockAlertRepository
}

// NewStockAlertService creates a new StockAlertService
func NewStockAlertService(txScope TransactionScope, alertRepo inventory.StockAlertRepository) *StockAlertService {
	return &StockAlertService{
		txScope:   txScope,
		alertRepo: alertRepo,
	}
}

// List retrieves alerts filtered by status and optionally warehouse.
// Defaults to PENDING, newest first.
func (s *StockAlertService) List(ctx context.Context, filter AlertListFilter) ([]StockAlertResponse, int64, error) {
	status := inventory.AlertStatus(filter.Status)
	if filter.Status == "" {
		status = inventory.AlertStatusPending
	}
	if !status.IsValid() {
		return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown alert status")
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}

	alerts, err := s.alertRepo.FindByStatus(ctx, status, filter.WarehouseID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.alertRepo.CountByStatus(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	return ToStockAlertResponses(alerts), total, nil
}

// Acknowledge marks a pending alert as seen by an operator
func (s *StockAlertService) Acknowledge(ctx context.Context, alertID uuid.UUID) (*StockAlertResponse, error) {
	return s.transition(ctx, alertID, func(alert *inventory.StockAlert) error {
		return alert.Acknowledge()
	})
}

// Resolve closes an alert
func (s *StockAlertService) Resolve(ctx context.Context, alertID uuid.UUID) (*StockAlertResponse, error) {
	return s.transition(ctx, alertID, func(alert *inventory.StockAlert) error {
		return alert.Resolve()
	})
}

// CountPending returns the number of open alerts
func (s *StockAlertService) CountPending(ctx context.Context) (int64, error) {
	return s.alertRepo.CountByStatus(ctx, inventory.AlertStatusPending)
}

func (s *StockAlertService) transition(ctx context.Context, alertID uuid.UUID, fn func(*inventory.StockAlert) error) (*StockAlertResponse, error) {
	var alert *inventory.StockAlert

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		alert, err = repos.AlertRepo().FindByID(ctx, alertID)
		if err != nil {
			return err
		}
		if err := fn(alert); err != nil {
			return err
		}
		return repos.AlertRepo().Save(ctx, alert)
	})
	if err != nil {
		return nil, err
	}

	response := ToStockAlertResponse(alert)
	return &response, nil
}
