package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/partserp/backend/internal/domain/catalog"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/partner"
	"github.com/partserp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockBelowMinimumHandler reacts to StockBelowMinimum events by opening
// or refreshing a low-stock alert for the ledger row.
//
// At most one PENDING alert exists per ledger row: a second trigger while
// one is open refreshes its quantity snapshot instead of creating another.
// The handler runs after the stock transaction committed; a failure here is
// logged and never rolls back the stock movement.
type StockBelowMinimumHandler struct {
	logger        *zap.Logger
	txScope       TransactionScope
	itemRepo      catalog.ItemRepository
	warehouseRepo partner.WarehouseRepository
}

// NewStockBelowMinimumHandler creates a new handler for stock below minimum events
func NewStockBelowMinimumHandler(logger *zap.Logger, txScope TransactionScope) *StockBelowMinimumHandler {
	return &StockBelowMinimumHandler{
		logger:  logger,
		txScope: txScope,
	}
}

// WithNameLookup sets the repositories used to resolve item and warehouse
// names for the alert message. Without them the message falls back to IDs.
func (h *StockBelowMinimumHandler) WithNameLookup(itemRepo catalog.ItemRepository, warehouseRepo partner.WarehouseRepository) *StockBelowMinimumHandler {
	h.itemRepo = itemRepo
	h.warehouseRepo = warehouseRepo
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *StockBelowMinimumHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowMinimum}
}

// Handle processes a StockBelowMinimumEvent
func (h *StockBelowMinimumHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	minEvent, ok := event.(*inventory.StockBelowMinimumEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockBelowMinimum),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowMinimum, event.EventType())
	}

	h.logger.Warn("stock below minimum detected",
		zap.String("stock_ledger_id", minEvent.StockLedgerID.String()),
		zap.String("item_id", minEvent.ItemID.String()),
		zap.String("warehouse_id", minEvent.WarehouseID.String()),
		zap.String("current_quantity", minEvent.CurrentQuantity.String()),
		zap.String("minimum_quantity", minEvent.MinimumQuantity.String()),
	)

	itemName, warehouseName := h.resolveNames(ctx, minEvent)

	return h.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		ledger, err := repos.LedgerRepo().FindByID(ctx, minEvent.StockLedgerID)
		if err != nil {
			return err
		}
		// The row may have been restocked between event and handling
		if !ledger.IsBelowMinimum() {
			return nil
		}

		existing, err := repos.AlertRepo().FindPendingByLedger(ctx, ledger.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		if existing != nil {
			if err := existing.Refresh(ledger, itemName, warehouseName); err != nil {
				return err
			}
			return repos.AlertRepo().Save(ctx, existing)
		}

		alert, err := inventory.NewStockAlert(ledger, itemName, warehouseName)
		if err != nil {
			return err
		}
		if err := repos.AlertRepo().Save(ctx, alert); err != nil {
			return err
		}

		h.logger.Info("stock alert opened",
			zap.String("alert_id", alert.ID.String()),
			zap.String("item", itemName),
			zap.String("warehouse", warehouseName),
		)
		return nil
	})
}

// resolveNames looks up display names for the alert message, falling back
// to raw IDs when the lookup repositories are absent or fail
func (h *StockBelowMinimumHandler) resolveNames(ctx context.Context, event *inventory.StockBelowMinimumEvent) (string, string) {
	itemName := event.ItemID.String()
	warehouseName := event.WarehouseID.String()

	if h.itemRepo != nil {
		if item, err := h.itemRepo.FindByID(ctx, event.ItemID); err == nil {
			itemName = item.Name
		}
	}
	if h.warehouseRepo != nil {
		if warehouse, err := h.warehouseRepo.FindByID(ctx, event.WarehouseID); err == nil {
			warehouseName = warehouse.Name
		}
	}
	return itemName, warehouseName
}

// Ensure StockBelowMinimumHandler implements shared.EventHandler
var _ shared.EventHandler = (*StockBelowMinimumHandler)(nil)
