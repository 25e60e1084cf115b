package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
)

// StockLedgerService handles stock ledger business operations.
//
// Every mutation runs inside a transaction scope: the ledger row is taken
// with a row lock, mutated through the aggregate, and saved before the
// transaction commits. Domain events are published after the commit, so
// alerting stays best-effort and never rolls back a stock movement.
// SnapshotCache caches stock snapshots for read-heavy lookups. A nil
// or failing cache never fails the read; the ledger row is the source
// of truth.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot StockSnapshot) error
	InvalidateSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) error
}

type StockLedgerService struct {
	txScope        TransactionScope
	ledgerRepo     inventory.StockLedgerRepository
	eventPublisher shared.EventPublisher
	snapshotCache  SnapshotCache
}

// NewStockLedgerService creates a new StockLedgerService. The plain
// repository serves non-locking reads; mutations go through the scope.
func NewStockLedgerService(txScope TransactionScope, ledgerRepo inventory.StockLedgerRepository) *StockLedgerService {
	return &StockLedgerService{
		txScope:    txScope,
		ledgerRepo: ledgerRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StockLedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetSnapshotCache sets the cache used by GetSnapshot
func (s *StockLedgerService) SetSnapshotCache(cache SnapshotCache) {
	s.snapshotCache = cache
}

// invalidateSnapshot drops the cached snapshot after a mutation.
// Cache failures are swallowed; the next read repopulates it.
func (s *StockLedgerService) invalidateSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) {
	if s.snapshotCache == nil {
		return
	}
	_ = s.snapshotCache.InvalidateSnapshot(ctx, itemID, warehouseID)
}

// publishDomainEvents publishes all domain events from the ledger row
func (s *StockLedgerService) publishDomainEvents(ctx context.Context, ledger *inventory.StockLedger) {
	if s.eventPublisher == nil {
		return
	}
	events := ledger.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
	ledger.ClearDomainEvents()
}

// GetByItemAndWarehouse retrieves the ledger row for an item-warehouse pair
func (s *StockLedgerService) GetByItemAndWarehouse(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockLedgerResponse, error) {
	ledger, err := s.ledgerRepo.FindByItemAndWarehouse(ctx, itemID, warehouseID)
	if err != nil {
		return nil, err
	}
	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// GetSnapshot retrieves the stock position for an item-warehouse pair,
// served from the cache when possible
func (s *StockLedgerService) GetSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockSnapshot, error) {
	if s.snapshotCache != nil {
		if snapshot, err := s.snapshotCache.GetSnapshot(ctx, itemID, warehouseID); err == nil && snapshot != nil {
			return snapshot, nil
		}
	}

	ledger, err := s.ledgerRepo.FindByItemAndWarehouse(ctx, itemID, warehouseID)
	if err != nil {
		return nil, err
	}

	snapshot := ToStockSnapshot(ledger)
	if s.snapshotCache != nil {
		_ = s.snapshotCache.SetSnapshot(ctx, snapshot)
	}
	return &snapshot, nil
}

// List retrieves ledger rows with filtering and pagination
func (s *StockLedgerService) List(ctx context.Context, filter StockListFilter) ([]StockLedgerResponse, int64, error) {
	domainFilter := buildStockFilter(filter)

	var (
		ledgers []inventory.StockLedger
		err     error
	)
	switch {
	case filter.BelowMinimum != nil && *filter.BelowMinimum:
		ledgers, err = s.ledgerRepo.FindBelowMinimum(ctx, domainFilter)
	case filter.WarehouseID != nil:
		ledgers, err = s.ledgerRepo.FindByWarehouse(ctx, *filter.WarehouseID, domainFilter)
	case filter.ItemID != nil:
		ledgers, err = s.ledgerRepo.FindByItem(ctx, *filter.ItemID, domainFilter)
	default:
		ledgers, err = s.ledgerRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.ledgerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockLedgerResponses(ledgers), total, nil
}

// IncreaseStock adds received stock, creating the ledger row on first receipt
func (s *StockLedgerService) IncreaseStock(ctx context.Context, req IncreaseStockRequest) (*StockLedgerResponse, error) {
	var ledger *inventory.StockLedger

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ledger, err = repos.LedgerRepo().GetOrCreateForUpdate(ctx, req.ItemID, req.WarehouseID)
		if err != nil {
			return err
		}
		if err := ledger.Increase(req.Quantity, valueobject.NewMoneyUSD(req.UnitCost)); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, ledger)
	s.invalidateSnapshot(ctx, req.ItemID, req.WarehouseID)

	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// ReserveStock commits available stock to an open sales order
func (s *StockLedgerService) ReserveStock(ctx context.Context, req ReserveStockRequest) (*StockLedgerResponse, error) {
	var ledger *inventory.StockLedger

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ledger, err = repos.LedgerRepo().GetForUpdate(ctx, req.ItemID, req.WarehouseID)
		if err != nil {
			return err
		}
		if err := ledger.Reserve(req.Quantity); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, ledger)
	s.invalidateSnapshot(ctx, req.ItemID, req.WarehouseID)

	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// ReleaseReservation returns reserved stock to the available pool
func (s *StockLedgerService) ReleaseReservation(ctx context.Context, req ReleaseStockRequest) (*StockLedgerResponse, error) {
	var ledger *inventory.StockLedger

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ledger, err = repos.LedgerRepo().GetForUpdate(ctx, req.ItemID, req.WarehouseID)
		if err != nil {
			return err
		}
		if _, err := ledger.ReleaseReservation(req.Quantity); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, ledger)
	s.invalidateSnapshot(ctx, req.ItemID, req.WarehouseID)

	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// ReduceStock removes physical stock, typically at shipment
func (s *StockLedgerService) ReduceStock(ctx context.Context, req ReduceStockRequest) (*StockLedgerResponse, error) {
	var ledger *inventory.StockLedger

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ledger, err = repos.LedgerRepo().GetForUpdate(ctx, req.ItemID, req.WarehouseID)
		if err != nil {
			return err
		}
		if err := ledger.Reduce(req.Quantity, req.FromReserved); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, ledger)
	s.invalidateSnapshot(ctx, req.ItemID, req.WarehouseID)

	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// SetThresholds sets the min/max stock thresholds for a ledger row,
// creating it when the pair has no stock history yet
func (s *StockLedgerService) SetThresholds(ctx context.Context, req SetThresholdsRequest) (*StockLedgerResponse, error) {
	var ledger *inventory.StockLedger

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ledger, err = repos.LedgerRepo().GetOrCreateForUpdate(ctx, req.ItemID, req.WarehouseID)
		if err != nil {
			return err
		}
		if req.MinQuantity != nil {
			if err := ledger.SetMinQuantity(*req.MinQuantity); err != nil {
				return err
			}
		}
		if req.MaxQuantity != nil {
			if err := ledger.SetMaxQuantity(*req.MaxQuantity); err != nil {
				return err
			}
		}
		return repos.LedgerRepo().Save(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, req.ItemID, req.WarehouseID)

	response := ToStockLedgerResponse(ledger)
	return &response, nil
}

// buildStockFilter translates the API filter to the domain filter
func buildStockFilter(filter StockListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "updated_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.WarehouseID != nil {
		domainFilter.Filters["warehouse_id"] = *filter.WarehouseID
	}
	if filter.ItemID != nil {
		domainFilter.Filters["item_id"] = *filter.ItemID
	}
	if filter.BelowMinimum != nil && *filter.BelowMinimum {
		domainFilter.Filters["below_minimum"] = true
	}
	return domainFilter
}
