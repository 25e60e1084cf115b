package catalog

import (
	"strings"

	"github.com/partserp/backend/internal/domain/shared"
)

// UnitOfMeasure enumerates how a spare part is counted or measured.
// Free-form units are rejected so quantities stay comparable across
// stock rows and order lines.
type UnitOfMeasure string

const (
	UnitPieces   UnitOfMeasure = "PCS"
	UnitBox      UnitOfMeasure = "BOX"
	UnitPackage  UnitOfMeasure = "PKG"
	UnitSet      UnitOfMeasure = "SET"
	UnitPair     UnitOfMeasure = "PAIR"
	UnitKilogram UnitOfMeasure = "KG"
	UnitLiter    UnitOfMeasure = "L"
	UnitMeter    UnitOfMeasure = "M"
)

var unitNames = map[UnitOfMeasure]string{
	UnitPieces:   "Pieces",
	UnitBox:      "Box",
	UnitPackage:  "Package",
	UnitSet:      "Set",
	UnitPair:     "Pair",
	UnitKilogram: "Kilogram",
	UnitLiter:    "Liter",
	UnitMeter:    "Meter",
}

// NormalizeUnit parses a user-supplied unit code. Codes are
// case-insensitive and an empty code defaults to pieces.
func NormalizeUnit(code string) (UnitOfMeasure, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return UnitPieces, nil
	}

	unit := UnitOfMeasure(code)
	if _, ok := unitNames[unit]; !ok {
		return "", shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure: "+code)
	}
	return unit, nil
}

// DisplayName returns the human-readable name of the unit
func (u UnitOfMeasure) DisplayName() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return string(u)
}

// String returns the unit code
func (u UnitOfMeasure) String() string {
	return string(u)
}

// IsDiscrete reports whether the unit counts whole articles rather than
// a measured amount. Discrete units cannot be fractionally ordered.
func (u UnitOfMeasure) IsDiscrete() bool {
	switch u {
	case UnitPieces, UnitBox, UnitPackage, UnitSet, UnitPair:
		return true
	}
	return false
}
