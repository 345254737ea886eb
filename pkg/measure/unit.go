// Package measure defines measurement units for the four supported
// categories, the Quantity value type, and the stateless measurement
// service. All conversions compose through a per-category base unit
// (feet, kilogram, litre, Celsius). Everything in this package is
// immutable and safe for concurrent use.
package measure

import (
	"errors"
	"fmt"
	"math"
)

// Measurement categories. Each unit belongs to exactly one category and
// the unit sets are closed; there is no dynamic registration.
const (
	CategoryLength      = "length"
	CategoryWeight      = "weight"
	CategoryVolume      = "volume"
	CategoryTemperature = "temperature"
)

// Tolerance is the absolute difference threshold, applied to base-unit
// values, under which two quantities compare as equal. Unit conversions
// introduce floating rounding, so exact comparison is never used.
const Tolerance = 1e-6

// Standard errors returned by this package.
var (
	ErrInvalidValue         = errors.New("value must be finite")
	ErrUnsupportedOperation = errors.New("operation not supported")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrNilQuantity          = errors.New("quantity must not be nil")
	ErrUnknownUnit          = errors.New("unknown unit")
)

// Unit is the capability shared by every unit descriptor. Each category
// implements it with its own concrete type, so quantities of different
// categories are distinct types and can never be compared or combined.
type Unit interface {
	// Name returns the human-readable unit name, e.g. "centimeter".
	Name() string
	// Symbol returns the display abbreviation, e.g. "cm".
	Symbol() string
	// Category returns the Category constant this unit belongs to.
	Category() string
	// ToBase converts a value in this unit to the category base unit.
	// Returns ErrInvalidValue if v is NaN or infinite.
	ToBase(v float64) (float64, error)
	// FromBase converts a base-unit value to this unit.
	// Returns ErrInvalidValue if v is NaN or infinite.
	FromBase(v float64) (float64, error)
	// SupportsArithmetic reports whether the category permits additive
	// arithmetic. True for length, weight, and volume; false for
	// temperature.
	SupportsArithmetic() bool
	// ValidateOperationSupport returns ErrUnsupportedOperation carrying
	// the operation name when the category forbids additive arithmetic.
	// No-op for the linear categories.
	ValidateOperationSupport(op string) error
	// Factor returns the scalar conversion factor to the base unit.
	// Returns ErrUnsupportedOperation for temperature units, whose
	// conversion is non-linear; callers must use ToBase/FromBase.
	Factor() (float64, error)
}

// Convert expresses v, given in source units, in target units. Both units
// belong to the same category by construction; the conversion composes
// through the category base unit.
func Convert[U Unit](source, target U, v float64) (float64, error) {
	base, err := source.ToBase(v)
	if err != nil {
		return 0, err
	}
	return target.FromBase(base)
}

// checkFinite rejects NaN and infinities at every conversion entry point.
func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidValue
	}
	return nil
}

// linearUnit is the shared core of the linear categories: conversion to
// and from the base unit is multiplication by a fixed factor.
type linearUnit struct {
	name     string
	symbol   string
	category string
	factor   float64
}

func (u linearUnit) Name() string     { return u.name }
func (u linearUnit) Symbol() string   { return u.symbol }
func (u linearUnit) Category() string { return u.category }

func (u linearUnit) ToBase(v float64) (float64, error) {
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v * u.factor, nil
}

func (u linearUnit) FromBase(v float64) (float64, error) {
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v / u.factor, nil
}

func (u linearUnit) SupportsArithmetic() bool { return true }

func (u linearUnit) ValidateOperationSupport(op string) error { return nil }

func (u linearUnit) Factor() (float64, error) { return u.factor, nil }

// LookupCategory returns the category of a unit name or symbol, searching
// all four categories. Matching is case-insensitive. Returns
// ErrUnknownUnit if no category defines the unit.
func LookupCategory(s string) (string, error) {
	if _, err := ParseLengthUnit(s); err == nil {
		return CategoryLength, nil
	}
	if _, err := ParseWeightUnit(s); err == nil {
		return CategoryWeight, nil
	}
	if _, err := ParseVolumeUnit(s); err == nil {
		return CategoryVolume, nil
	}
	if _, err := ParseTemperatureUnit(s); err == nil {
		return CategoryTemperature, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Categories lists the supported categories in display order.
func Categories() []string {
	return []string{CategoryLength, CategoryWeight, CategoryVolume, CategoryTemperature}
}

// UnitsIn returns the closed unit enumeration for a category, in
// definition order. Returns nil for an unrecognized category.
func UnitsIn(category string) []Unit {
	switch category {
	case CategoryLength:
		return []Unit{Feet, Inch, Yard, Centimeter}
	case CategoryWeight:
		return []Unit{Kilogram, Gram, Pound}
	case CategoryVolume:
		return []Unit{Litre, Millilitre, Gallon}
	case CategoryTemperature:
		return []Unit{Celsius, Fahrenheit, Kelvin}
	default:
		return nil
	}
}
