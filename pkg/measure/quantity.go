package measure

import (
	"fmt"
	"math"
	"strconv"
)

// Quantity binds a finite value to a unit of one category. It is an
// immutable value type: every operation returns a new Quantity. The
// type parameter makes quantities of different categories distinct
// types, so cross-category comparison or arithmetic does not compile.
//
// Equality is tolerance-based (see Tolerance) while the value itself is
// an exact float64, so near-equal quantities are not interchangeable as
// map keys. Do not use Quantity as a map key or set member.
type Quantity[U Unit] struct {
	value float64
	unit  U
}

// New creates a Quantity from a value and unit.
// Returns ErrInvalidValue if value is NaN or infinite.
func New[U Unit](value float64, unit U) (Quantity[U], error) {
	if err := checkFinite(value); err != nil {
		return Quantity[U]{}, err
	}
	return Quantity[U]{value: value, unit: unit}, nil
}

// Value returns the numeric value in the quantity's own unit.
func (q Quantity[U]) Value() float64 { return q.value }

// Unit returns the quantity's unit.
func (q Quantity[U]) Unit() U { return q.unit }

// ConvertTo returns a new Quantity expressing the same measurement in
// target units.
func (q Quantity[U]) ConvertTo(target U) (Quantity[U], error) {
	v, err := Convert(q.unit, target, q.value)
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(v, target)
}

// ConvertToScalar returns the quantity's value expressed in target
// units as a raw number.
func (q Quantity[U]) ConvertToScalar(target U) (float64, error) {
	return Convert(q.unit, target, q.value)
}

// Add returns the sum of the two quantities, expressed in the
// receiver's unit. Returns ErrUnsupportedOperation if the category
// forbids arithmetic.
func (q Quantity[U]) Add(other Quantity[U]) (Quantity[U], error) {
	return q.AddIn(other, q.unit)
}

// AddIn returns the sum of the two quantities, expressed in target
// units. The operands are summed in the category base unit. Returns
// ErrUnsupportedOperation if the category forbids arithmetic.
func (q Quantity[U]) AddIn(other Quantity[U], target U) (Quantity[U], error) {
	if err := q.unit.ValidateOperationSupport("add"); err != nil {
		return Quantity[U]{}, err
	}
	a, err := q.unit.ToBase(q.value)
	if err != nil {
		return Quantity[U]{}, err
	}
	b, err := other.unit.ToBase(other.value)
	if err != nil {
		return Quantity[U]{}, err
	}
	v, err := target.FromBase(a + b)
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(v, target)
}

// Subtract returns the difference of the two quantities, expressed in
// the receiver's unit. Returns ErrUnsupportedOperation if the category
// forbids arithmetic.
func (q Quantity[U]) Subtract(other Quantity[U]) (Quantity[U], error) {
	if err := q.unit.ValidateOperationSupport("subtract"); err != nil {
		return Quantity[U]{}, err
	}
	a, err := q.unit.ToBase(q.value)
	if err != nil {
		return Quantity[U]{}, err
	}
	b, err := other.unit.ToBase(other.value)
	if err != nil {
		return Quantity[U]{}, err
	}
	v, err := q.unit.FromBase(a - b)
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(v, q.unit)
}

// Divide returns the ratio of the two quantities' base-unit values.
// Returns ErrDivisionByZero if the divisor's base value is zero and
// ErrUnsupportedOperation if the category forbids arithmetic.
func (q Quantity[U]) Divide(other Quantity[U]) (float64, error) {
	if err := q.unit.ValidateOperationSupport("divide"); err != nil {
		return 0, err
	}
	a, err := q.unit.ToBase(q.value)
	if err != nil {
		return 0, err
	}
	b, err := other.unit.ToBase(other.value)
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Equals reports whether the two quantities denote the same measurement,
// comparing base-unit values within Tolerance. Equals never errors;
// a failed base conversion compares as unequal.
func (q Quantity[U]) Equals(other Quantity[U]) bool {
	a, err := q.unit.ToBase(q.value)
	if err != nil {
		return false
	}
	b, err := other.unit.ToBase(other.value)
	if err != nil {
		return false
	}
	return math.Abs(a-b) < Tolerance
}

// String formats the quantity as "<value> <symbol>".
func (q Quantity[U]) String() string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(q.value, 'g', -1, 64), q.unit.Symbol())
}
