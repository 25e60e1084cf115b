package inventory

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLedger(t *testing.T) *StockLedger {
	t.Helper()
	ledger, err := NewStockLedger(uuid.New(), uuid.New())
	require.NoError(t, err)
	return ledger
}

func TestNewStockLedger(t *testing.T) {
	itemID := uuid.New()
	warehouseID := uuid.New()

	t.Run("creates empty ledger row", func(t *testing.T) {
		ledger, err := NewStockLedger(itemID, warehouseID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ledger.ID)
		assert.Equal(t, itemID, ledger.ItemID)
		assert.Equal(t, warehouseID, ledger.WarehouseID)
		assert.True(t, ledger.Quantity.IsZero())
		assert.True(t, ledger.ReservedQuantity.IsZero())
		assert.True(t, ledger.AvailableQuantity.IsZero())
		assert.True(t, ledger.AverageCost.IsZero())
	})

	t.Run("fails with nil item ID", func(t *testing.T) {
		ledger, err := NewStockLedger(uuid.Nil, warehouseID)

		require.Error(t, err)
		assert.Nil(t, ledger)
	})

	t.Run("fails with nil warehouse ID", func(t *testing.T) {
		ledger, err := NewStockLedger(itemID, uuid.Nil)

		require.Error(t, err)
		assert.Nil(t, ledger)
		assert.True(t, errors.Is(err, shared.ErrMissingWarehouse))
	})
}

func TestStockLedger_Increase(t *testing.T) {
	t.Run("increases stock and computes weighted average cost", func(t *testing.T) {
		ledger := createTestLedger(t)

		err := ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00))

		require.NoError(t, err)
		assert.Equal(t, "100", ledger.Quantity.String())
		assert.Equal(t, "10", ledger.AverageCost.String())
		assert.Equal(t, "100", ledger.AvailableQuantity.String())
		require.NotNil(t, ledger.LastRestocked)

		// Second receipt at a different cost:
		// (100*10 + 100*20) / 200 = 15
		err = ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(20.00))

		require.NoError(t, err)
		assert.Equal(t, "200", ledger.Quantity.String())
		assert.Equal(t, "15", ledger.AverageCost.String())
	})

	t.Run("first receipt into empty ledger takes incoming cost", func(t *testing.T) {
		ledger := createTestLedger(t)

		err := ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(58.00))

		require.NoError(t, err)
		assert.Equal(t, "58", ledger.AverageCost.String())
	})

	t.Run("weighted average with uneven quantities", func(t *testing.T) {
		ledger := createTestLedger(t)

		require.NoError(t, ledger.Increase(decimal.NewFromInt(30), valueobject.NewMoneyUSDFromFloat(12.50)))
		require.NoError(t, ledger.Increase(decimal.NewFromInt(70), valueobject.NewMoneyUSDFromFloat(10.00)))

		// (30*12.50 + 70*10.00) / 100 = 10.75
		assert.Equal(t, "10.75", ledger.AverageCost.String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		ledger := createTestLedger(t)

		err := ledger.Increase(decimal.Zero, valueobject.NewMoneyUSDFromFloat(10.00))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidQuantity))
		assert.True(t, ledger.Quantity.IsZero())
	})

	t.Run("rejects negative unit cost", func(t *testing.T) {
		ledger := createTestLedger(t)

		err := ledger.Increase(decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(-1.00))

		require.Error(t, err)
	})

	t.Run("emits increased and cost changed events", func(t *testing.T) {
		ledger := createTestLedger(t)
		ledger.ClearDomainEvents()

		require.NoError(t, ledger.Increase(decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(5.00)))

		types := eventTypes(ledger)
		assert.Contains(t, types, EventTypeStockIncreased)
		assert.Contains(t, types, EventTypeAverageCostChanged)
	})
}

func TestStockLedger_Reserve(t *testing.T) {
	t.Run("reserves available stock", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))

		err := ledger.Reserve(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "10", ledger.ReservedQuantity.String())
		assert.Equal(t, "90", ledger.AvailableQuantity.String())
		assert.Equal(t, "100", ledger.Quantity.String())
	})

	t.Run("fails when available stock is insufficient", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(50), valueobject.NewMoneyUSDFromFloat(10.00)))

		err := ledger.Reserve(decimal.NewFromInt(60))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))

		var insufficient *InsufficientStockError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, ledger.ItemID, insufficient.ItemID)
		assert.Equal(t, ledger.WarehouseID, insufficient.WarehouseID)
		assert.Equal(t, "60", insufficient.Requested.String())
		assert.Equal(t, "50", insufficient.Available.String())

		// Rejected operation leaves the row untouched
		assert.True(t, ledger.ReservedQuantity.IsZero())
		assert.Equal(t, "50", ledger.AvailableQuantity.String())
	})

	t.Run("counts prior reservations against availability", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(60)))

		err := ledger.Reserve(decimal.NewFromInt(60))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.Equal(t, "60", ledger.ReservedQuantity.String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		ledger := createTestLedger(t)

		err := ledger.Reserve(decimal.NewFromInt(-5))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidQuantity))
	})
}

func TestStockLedger_ReleaseReservation(t *testing.T) {
	t.Run("releases reserved stock back to available", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(10)))

		released, err := ledger.ReleaseReservation(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "10", released.String())
		assert.True(t, ledger.ReservedQuantity.IsZero())
		assert.Equal(t, "100", ledger.AvailableQuantity.String())
	})

	t.Run("clamps release larger than outstanding reservation", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(5)))

		released, err := ledger.ReleaseReservation(decimal.NewFromInt(20))

		require.NoError(t, err)
		assert.Equal(t, "5", released.String())
		assert.True(t, ledger.ReservedQuantity.IsZero())
	})

	t.Run("release with nothing reserved is harmless", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))

		released, err := ledger.ReleaseReservation(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.True(t, released.IsZero())
		assert.True(t, ledger.ReservedQuantity.IsZero())
		assert.Equal(t, "100", ledger.AvailableQuantity.String())
	})
}

func TestStockLedger_Reduce(t *testing.T) {
	t.Run("reduces on-hand stock and releases reservation", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(10)))

		err := ledger.Reduce(decimal.NewFromInt(10), true)

		require.NoError(t, err)
		assert.Equal(t, "90", ledger.Quantity.String())
		assert.True(t, ledger.ReservedQuantity.IsZero())
		assert.Equal(t, "90", ledger.AvailableQuantity.String())
	})

	t.Run("reduces without touching reservations", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(20)))

		err := ledger.Reduce(decimal.NewFromInt(30), false)

		require.NoError(t, err)
		assert.Equal(t, "70", ledger.Quantity.String())
		assert.Equal(t, "20", ledger.ReservedQuantity.String())
		assert.Equal(t, "50", ledger.AvailableQuantity.String())
	})

	t.Run("plain reduction cannot eat into reserved stock", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(8)))

		err := ledger.Reduce(decimal.NewFromInt(5), false)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))

		var insufficient *InsufficientStockError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, "5", insufficient.Requested.String())
		assert.Equal(t, "2", insufficient.Available.String())

		// Rejected operation leaves the row untouched
		assert.Equal(t, "10", ledger.Quantity.String())
		assert.Equal(t, "8", ledger.ReservedQuantity.String())
		assert.Equal(t, "2", ledger.AvailableQuantity.String())

		// The unreserved remainder is still reducible
		require.NoError(t, ledger.Reduce(decimal.NewFromInt(2), false))
		assert.Equal(t, "8", ledger.Quantity.String())
		assert.Equal(t, "8", ledger.ReservedQuantity.String())
		assert.True(t, ledger.AvailableQuantity.IsZero())
	})

	t.Run("fails when on-hand stock is insufficient", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(10.00)))

		err := ledger.Reduce(decimal.NewFromInt(20), true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.Equal(t, "10", ledger.Quantity.String())
	})

	t.Run("clamps reservation release when reducing more than reserved", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		require.NoError(t, ledger.Reserve(decimal.NewFromInt(5)))

		err := ledger.Reduce(decimal.NewFromInt(10), true)

		require.NoError(t, err)
		assert.Equal(t, "90", ledger.Quantity.String())
		assert.True(t, ledger.ReservedQuantity.IsZero())
	})
}

func TestStockLedger_Invariants(t *testing.T) {
	// quantity >= 0, reserved >= 0, reserved <= quantity,
	// available == quantity - reserved after every committed operation
	ledger := createTestLedger(t)

	checkInvariants := func() {
		t.Helper()
		assert.False(t, ledger.Quantity.IsNegative())
		assert.False(t, ledger.ReservedQuantity.IsNegative())
		assert.True(t, ledger.ReservedQuantity.LessThanOrEqual(ledger.Quantity))
		assert.True(t, ledger.AvailableQuantity.Equal(ledger.Quantity.Sub(ledger.ReservedQuantity)))
	}

	require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
	checkInvariants()
	require.NoError(t, ledger.Reserve(decimal.NewFromInt(40)))
	checkInvariants()
	require.NoError(t, ledger.Reduce(decimal.NewFromInt(40), true))
	checkInvariants()
	_, err := ledger.ReleaseReservation(decimal.NewFromInt(10))
	require.NoError(t, err)
	checkInvariants()
}

func TestStockLedger_BelowMinimum(t *testing.T) {
	t.Run("emits below-minimum event when reduction crosses threshold", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.SetMinQuantity(decimal.NewFromInt(20)))
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		ledger.ClearDomainEvents()

		require.NoError(t, ledger.Reduce(decimal.NewFromInt(85), false))

		assert.True(t, ledger.IsBelowMinimum())
		assert.Contains(t, eventTypes(ledger), EventTypeStockBelowMinimum)
	})

	t.Run("no event while above threshold", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.SetMinQuantity(decimal.NewFromInt(20)))
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		ledger.ClearDomainEvents()

		require.NoError(t, ledger.Reduce(decimal.NewFromInt(10), false))

		assert.NotContains(t, eventTypes(ledger), EventTypeStockBelowMinimum)
	})

	t.Run("reservations never emit level events", func(t *testing.T) {
		ledger := createTestLedger(t)
		require.NoError(t, ledger.SetMinQuantity(decimal.NewFromInt(200)))
		require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
		ledger.ClearDomainEvents()

		require.NoError(t, ledger.Reserve(decimal.NewFromInt(10)))

		assert.NotContains(t, eventTypes(ledger), EventTypeStockBelowMinimum)
	})
}

func TestStockLedger_CanFulfill(t *testing.T) {
	ledger := createTestLedger(t)
	require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(10.00)))
	require.NoError(t, ledger.Reserve(decimal.NewFromInt(30)))

	assert.True(t, ledger.CanFulfill(decimal.NewFromInt(70)))
	assert.False(t, ledger.CanFulfill(decimal.NewFromInt(71)))
}

func TestStockLedger_TotalValue(t *testing.T) {
	ledger := createTestLedger(t)
	require.NoError(t, ledger.Increase(decimal.NewFromInt(100), valueobject.NewMoneyUSDFromFloat(58.00)))

	assert.Equal(t, "5800", ledger.TotalValue().Amount().String())
}

func eventTypes(ledger *StockLedger) []string {
	types := make([]string, 0, len(ledger.GetDomainEvents()))
	for _, evt := range ledger.GetDomainEvents() {
		types = append(types, evt.EventType())
	}
	return types
}
