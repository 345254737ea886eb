package measure

import (
	"fmt"
	"strings"
)

// VolumeUnit is a unit of volume. The base unit is litre.
type VolumeUnit struct {
	linearUnit
}

// Volume units. The factor is relative to litre.
var (
	Litre      = VolumeUnit{linearUnit{"litre", "l", CategoryVolume, 1.0}}
	Millilitre = VolumeUnit{linearUnit{"millilitre", "ml", CategoryVolume, 0.001}}
	Gallon     = VolumeUnit{linearUnit{"gallon", "gal", CategoryVolume, 3.78541}}
)

// volumeUnits maps lowercase names and symbols to their unit.
var volumeUnits = map[string]VolumeUnit{
	"litre": Litre, "l": Litre, "liter": Litre,
	"millilitre": Millilitre, "ml": Millilitre, "milliliter": Millilitre,
	"gallon": Gallon, "gal": Gallon,
}

// ParseVolumeUnit resolves a volume unit from its name or symbol.
// Matching is case-insensitive. Returns ErrUnknownUnit on no match.
func ParseVolumeUnit(s string) (VolumeUnit, error) {
	u, ok := volumeUnits[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return VolumeUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
