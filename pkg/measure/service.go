package measure

import (
	"strconv"
	"strings"
)

// Service is the stateless measurement façade used by the CLI layer.
// It is generic over the unit category, so a Service[LengthUnit] cannot
// be handed a weight quantity. The zero value is ready to use and safe
// for concurrent use.
type Service[U Unit] struct{}

// ParseQuantity parses raw user input into a Quantity in the given
// unit. Returns nil if the input is blank, is not a number, or does not
// parse to a finite value. Malformed input is an expected, recoverable
// condition, so no error is reported.
func (Service[U]) ParseQuantity(input string, unit U) *Quantity[U] {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	// ParseFloat accepts "inf"; New rejects it along with any other
	// non-finite result.
	q, err := New(v, unit)
	if err != nil {
		return nil
	}
	return &q
}

// AreEqual reports whether two parsed quantities denote the same
// measurement. Returns false when either operand is nil.
func (Service[U]) AreEqual(a, b *Quantity[U]) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equals(*b)
}

// ConvertValue expresses v, given in source units, in target units.
func (Service[U]) ConvertValue(v float64, source, target U) (float64, error) {
	q, err := New(v, source)
	if err != nil {
		return 0, err
	}
	return q.ConvertToScalar(target)
}

// Add returns the sum of two quantities expressed in the first
// operand's unit. Returns ErrNilQuantity if either operand is nil.
func (Service[U]) Add(a, b *Quantity[U]) (Quantity[U], error) {
	if a == nil || b == nil {
		return Quantity[U]{}, ErrNilQuantity
	}
	return a.Add(*b)
}

// AddWithTarget returns the sum of two quantities expressed in target
// units. Returns ErrNilQuantity if either operand is nil.
func (Service[U]) AddWithTarget(a, b *Quantity[U], target U) (Quantity[U], error) {
	if a == nil || b == nil {
		return Quantity[U]{}, ErrNilQuantity
	}
	return a.AddIn(*b, target)
}
