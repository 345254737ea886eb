package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	svc := Service[LengthUnit]{}

	tests := []struct {
		name    string
		input   string
		want    float64
		wantNil bool
	}{
		{name: "plain integer", input: "2", want: 2.0},
		{name: "decimal", input: "3.75", want: 3.75},
		{name: "negative", input: "-12.5", want: -12.5},
		{name: "scientific notation", input: "1e3", want: 1000.0},
		{name: "surrounding whitespace", input: "  42 ", want: 42.0},
		{name: "empty input", input: "", wantNil: true},
		{name: "blank input", input: "   ", wantNil: true},
		{name: "not a number", input: "abc", wantNil: true},
		{name: "trailing garbage", input: "2x", wantNil: true},
		{name: "infinity is not finite", input: "inf", wantNil: true},
		{name: "nan is not finite", input: "NaN", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := svc.ParseQuantity(tt.input, Feet)
			if tt.wantNil {
				assert.Nil(t, q)
				return
			}
			require.NotNil(t, q)
			assert.Equal(t, tt.want, q.Value())
			assert.Equal(t, Feet, q.Unit())
		})
	}
}

func TestAreEqual(t *testing.T) {
	svc := Service[LengthUnit]{}

	yard := svc.ParseQuantity("1", Yard)
	feet := svc.ParseQuantity("3", Feet)
	require.NotNil(t, yard)
	require.NotNil(t, feet)

	assert.True(t, svc.AreEqual(yard, feet))
	assert.False(t, svc.AreEqual(yard, svc.ParseQuantity("3.01", Feet)))

	// Missing operands compare as unequal, never error.
	assert.False(t, svc.AreEqual(nil, feet))
	assert.False(t, svc.AreEqual(yard, nil))
	assert.False(t, svc.AreEqual(nil, nil))
}

func TestServiceConvertValue(t *testing.T) {
	svc := Service[WeightUnit]{}

	got, err := svc.ConvertValue(2.0, Kilogram, Gram)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got, Tolerance)

	got, err = svc.ConvertValue(1.0, Pound, Kilogram)
	require.NoError(t, err)
	assert.InDelta(t, 0.45359237, got, Tolerance)
}

func TestServiceAdd(t *testing.T) {
	svc := Service[VolumeUnit]{}

	a := svc.ParseQuantity("2", Litre)
	b := svc.ParseQuantity("1000", Millilitre)

	sum, err := svc.Add(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, sum.Value(), Tolerance)
	assert.Equal(t, Litre, sum.Unit())

	sum, err = svc.AddWithTarget(a, b, Gallon)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/3.78541, sum.Value(), Tolerance)
	assert.Equal(t, Gallon, sum.Unit())
}

func TestServiceAddNilOperand(t *testing.T) {
	svc := Service[VolumeUnit]{}
	a := svc.ParseQuantity("2", Litre)

	_, err := svc.Add(a, nil)
	assert.ErrorIs(t, err, ErrNilQuantity)

	_, err = svc.Add(nil, a)
	assert.ErrorIs(t, err, ErrNilQuantity)

	_, err = svc.AddWithTarget(nil, nil, Litre)
	assert.ErrorIs(t, err, ErrNilQuantity)
}
