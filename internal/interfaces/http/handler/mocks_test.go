package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/partserp/backend/internal/domain/trade"
)

// stockedTestLedger builds a ledger row holding qty units at $10 each.
func stockedTestLedger(t *testing.T, itemID, warehouseID uuid.UUID, qty int64) *inventory.StockLedger {
	t.Helper()
	ledger, err := inventory.NewStockLedger(itemID, warehouseID)
	require.NoError(t, err)
	require.NoError(t, ledger.Increase(decimal.NewFromInt(qty), valueobject.NewMoneyUSDFromFloat(10)))
	ledger.ClearDomainEvents()
	return ledger
}

// emptyTestLedger builds a ledger row with no stock movements yet.
func emptyTestLedger(t *testing.T, itemID, warehouseID uuid.UUID) *inventory.StockLedger {
	t.Helper()
	ledger, err := inventory.NewStockLedger(itemID, warehouseID)
	require.NoError(t, err)
	ledger.ClearDomainEvents()
	return ledger
}

// MockSalesOrderRepository is a mock implementation of trade.SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.SalesOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByStatus(ctx context.Context, status trade.SalesOrderStatus, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, clientID, filter)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, start, end, filter)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) SumTotalByStatusAndDateRange(ctx context.Context, statuses []trade.SalesOrderStatus, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, statuses, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSalesOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockLedgerRepository is a mock implementation of inventory.StockLedgerRepository
type MockStockLedgerRepository struct {
	mock.Mock
}

func (m *MockStockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockLedger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) FindByItemAndWarehouse(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	args := m.Called(ctx, itemID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) GetForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	args := m.Called(ctx, itemID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) GetOrCreateForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	args := m.Called(ctx, itemID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockLedger, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.StockLedger, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.StockLedger, error) {
	args := m.Called(ctx, itemID, filter)
	return args.Get(0).([]inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) FindBelowMinimum(ctx context.Context, filter shared.Filter) ([]inventory.StockLedger, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockLedger), args.Error(1)
}

func (m *MockStockLedgerRepository) Save(ctx context.Context, ledger *inventory.StockLedger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockStockLedgerRepository) SaveWithLock(ctx context.Context, ledger *inventory.StockLedger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockStockLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
