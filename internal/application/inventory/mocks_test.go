package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/mock"
)

func moneyUSD(v float64) valueobject.Money {
	return valueobject.NewMoneyUSDFromFloat(v)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		events: make([]shared.DomainEvent, 0),
	}
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEvents() []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, len(m.events))
	copy(result, m.events)
	return result
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, 0)
	for _, e := range m.events {
		if e.EventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

// MockStockLedgerRepository is a mock implementation of StockLedgerRepository
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

// MockStockAlertRepository is a mock implementation of StockAlertRepository
type MockStockAlertRepository struct {
	mock.Mock
}

func (m *MockStockAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockAlert), args.Error(1)
}

func (m *MockStockAlertRepository) FindPendingByLedger(ctx context.Context, stockLedgerID uuid.UUID) (*inventory.StockAlert, error) {
	args := m.Called(ctx, stockLedgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockAlert), args.Error(1)
}

func (m *MockStockAlertRepository) FindByStatus(ctx context.Context, status inventory.AlertStatus, warehouseID *uuid.UUID, filter shared.Filter) ([]inventory.StockAlert, error) {
	args := m.Called(ctx, status, warehouseID, filter)
	return args.Get(0).([]inventory.StockAlert), args.Error(1)
}

func (m *MockStockAlertRepository) Save(ctx context.Context, alert *inventory.StockAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockStockAlertRepository) CountByStatus(ctx context.Context, status inventory.AlertStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockSnapshotCache is a mock implementation of SnapshotCache
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) GetSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockSnapshot, error) {
	args := m.Called(ctx, itemID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StockSnapshot), args.Error(1)
}

func (m *MockSnapshotCache) SetSnapshot(ctx context.Context, snapshot StockSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotCache) InvalidateSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) error {
	args := m.Called(ctx, itemID, warehouseID)
	return args.Error(0)
}
