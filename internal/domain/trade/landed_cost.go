package trade

import (
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LandedCost is the result of allocating acquisition costs to a purchase
// line: the per-unit cost that feeds the weighted average, and the line
// total. Freight, duty and other costs are the amounts attributed to the
// line itself; nothing is prorated across sibling lines.
type LandedCost struct {
	PerUnit decimal.Decimal `json:"per_unit"`
	Total   decimal.Decimal `json:"total"`
}

// ComputeLandedCost turns a purchase line's unit cost plus its allocated
// freight, customs duty and other costs into a landed cost:
//
//	per_unit = unit_cost + (freight + duty + other) / quantity
//	total    = per_unit * quantity
//
// Intermediate division is kept at 4 decimal places, matching the ledger's
// cost precision.
func ComputeLandedCost(quantity, unitCost, freight, duty, other decimal.Decimal) (LandedCost, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return LandedCost{}, shared.ErrInvalidQuantity
	}
	if unitCost.IsNegative() || freight.IsNegative() || duty.IsNegative() || other.IsNegative() {
		return LandedCost{}, shared.NewDomainError("INVALID_COST", "Costs cannot be negative")
	}

	additional := freight.Add(duty).Add(other)
	perUnit := unitCost.Add(additional.Div(quantity)).Round(4)

	return LandedCost{
		PerUnit: perUnit,
		Total:   perUnit.Mul(quantity).Round(4),
	}, nil
}
