package measure

import (
	"fmt"
	"strings"
)

// WeightUnit is a unit of weight. The base unit is kilogram.
type WeightUnit struct {
	linearUnit
}

// Weight units. The factor is relative to kilogram.
var (
	Kilogram = WeightUnit{linearUnit{"kilogram", "kg", CategoryWeight, 1.0}}
	Gram     = WeightUnit{linearUnit{"gram", "g", CategoryWeight, 0.001}}
	Pound    = WeightUnit{linearUnit{"pound", "lb", CategoryWeight, 0.45359237}}
)

// weightUnits maps lowercase names and symbols to their unit.
var weightUnits = map[string]WeightUnit{
	"kilogram": Kilogram, "kg": Kilogram,
	"gram": Gram, "g": Gram,
	"pound": Pound, "lb": Pound,
}

// ParseWeightUnit resolves a weight unit from its name or symbol.
// Matching is case-insensitive. Returns ErrUnknownUnit on no match.
func ParseWeightUnit(s string) (WeightUnit, error) {
	u, ok := weightUnits[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return WeightUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
