package measure

import (
	"fmt"
	"strings"
)

// TemperatureUnit is a unit of temperature. The base unit is Celsius.
// Temperature conversions are non-linear, so each unit carries an
// explicit pair of conversion functions instead of a scalar factor, and
// the category forbids additive arithmetic: adding two temperatures has
// no physical meaning.
type TemperatureUnit struct {
	name     string
	symbol   string
	toBase   func(float64) float64
	fromBase func(float64) float64
}

// Temperature units.
var (
	Celsius = TemperatureUnit{
		name:     "celsius",
		symbol:   "°C",
		toBase:   func(v float64) float64 { return v },
		fromBase: func(v float64) float64 { return v },
	}
	Fahrenheit = TemperatureUnit{
		name:     "fahrenheit",
		symbol:   "°F",
		toBase:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		fromBase: func(v float64) float64 { return v*9/5 + 32 },
	}
	Kelvin = TemperatureUnit{
		name:     "kelvin",
		symbol:   "K",
		toBase:   func(v float64) float64 { return v - 273.15 },
		fromBase: func(v float64) float64 { return v + 273.15 },
	}
)

func (u TemperatureUnit) Name() string     { return u.name }
func (u TemperatureUnit) Symbol() string   { return u.symbol }
func (u TemperatureUnit) Category() string { return CategoryTemperature }

// ToBase converts v in this unit to Celsius.
// Returns ErrInvalidValue if v is NaN or infinite.
func (u TemperatureUnit) ToBase(v float64) (float64, error) {
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return u.toBase(v), nil
}

// FromBase converts a Celsius value to this unit.
// Returns ErrInvalidValue if v is NaN or infinite.
func (u TemperatureUnit) FromBase(v float64) (float64, error) {
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return u.fromBase(v), nil
}

// SupportsArithmetic reports false: temperatures cannot be added,
// subtracted, or divided.
func (u TemperatureUnit) SupportsArithmetic() bool { return false }

// ValidateOperationSupport returns ErrUnsupportedOperation carrying the
// operation name; no temperature arithmetic is supported.
func (u TemperatureUnit) ValidateOperationSupport(op string) error {
	return fmt.Errorf("%w: %s on temperature", ErrUnsupportedOperation, op)
}

// Factor returns ErrUnsupportedOperation: temperature conversion is
// non-linear and has no scalar factor. Use ToBase and FromBase.
func (u TemperatureUnit) Factor() (float64, error) {
	return 0, fmt.Errorf("%w: non-linear conversion", ErrUnsupportedOperation)
}

// temperatureUnits maps lowercase names and symbols to their unit.
var temperatureUnits = map[string]TemperatureUnit{
	"celsius": Celsius, "c": Celsius,
	"fahrenheit": Fahrenheit, "f": Fahrenheit,
	"kelvin": Kelvin, "k": Kelvin,
}

// ParseTemperatureUnit resolves a temperature unit from its name or
// symbol. Matching is case-insensitive and ignores a leading degree
// sign. Returns ErrUnknownUnit on no match.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "°")
	u, ok := temperatureUnits[key]
	if !ok {
		return TemperatureUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
