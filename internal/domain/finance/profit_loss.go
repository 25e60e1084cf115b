package finance

import (
	"time"

	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProfitLossReport stores a calculated profit and loss statement for a
// reporting period. Recomputing the same period overwrites the stored
// figures; (period_start, period_end) is unique.
type ProfitLossReport struct {
	shared.BaseEntity
	PeriodStart       time.Time       `gorm:"not null;uniqueIndex:idx_profit_loss_period,priority:1"`
	PeriodEnd         time.Time       `gorm:"not null;uniqueIndex:idx_profit_loss_period,priority:2"`
	TotalRevenue      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalCostOfGoods  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalExpenses     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GrossProfit       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	NetProfit         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProfitLossReport) TableName() string {
	return "profit_loss_reports"
}

// NewProfitLossReport builds a report from the period aggregates.
// Gross profit is revenue minus cost of goods; net profit subtracts
// operating expenses from gross profit.
func NewProfitLossReport(periodStart, periodEnd time.Time, revenue, costOfGoods, expenses decimal.Decimal) (*ProfitLossReport, error) {
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period start and end are required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot be before period start")
	}

	gross := revenue.Sub(costOfGoods)
	return &ProfitLossReport{
		BaseEntity:       shared.NewBaseEntity(),
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		TotalRevenue:     revenue,
		TotalCostOfGoods: costOfGoods,
		TotalExpenses:    expenses,
		GrossProfit:      gross,
		NetProfit:        gross.Sub(expenses),
	}, nil
}

// IsProfitable checks if the period closed with a positive net profit
func (r *ProfitLossReport) IsProfitable() bool {
	return r.NetProfit.IsPositive()
}
