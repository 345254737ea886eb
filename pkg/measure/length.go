package measure

import (
	"fmt"
	"strings"
)

// LengthUnit is a unit of length. The base unit is feet.
type LengthUnit struct {
	linearUnit
}

// Length units. The factor is relative to feet.
var (
	Feet       = LengthUnit{linearUnit{"feet", "ft", CategoryLength, 1.0}}
	Inch       = LengthUnit{linearUnit{"inch", "in", CategoryLength, 1.0 / 12.0}}
	Yard       = LengthUnit{linearUnit{"yard", "yd", CategoryLength, 3.0}}
	Centimeter = LengthUnit{linearUnit{"centimeter", "cm", CategoryLength, 1.0 / (2.54 * 12.0)}}
)

// lengthUnits maps lowercase names and symbols to their unit.
var lengthUnits = map[string]LengthUnit{
	"feet": Feet, "ft": Feet, "foot": Feet,
	"inch": Inch, "in": Inch,
	"yard": Yard, "yd": Yard,
	"centimeter": Centimeter, "cm": Centimeter,
}

// ParseLengthUnit resolves a length unit from its name or symbol.
// Matching is case-insensitive. Returns ErrUnknownUnit on no match.
func ParseLengthUnit(s string) (LengthUnit, error) {
	u, ok := lengthUnits[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LengthUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
