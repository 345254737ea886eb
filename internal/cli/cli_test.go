package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gauge/pkg/measure"
)

// runCLI executes the root command with isolated config and data
// directories and plain output, returning combined output.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args,
		"--plain",
		"--config-dir", filepath.Join(dir, "cfg"),
		"--data-dir", filepath.Join(dir, "data"),
	))
	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "convert", "12", "inch", "feet")
	require.NoError(t, err)
	assert.Contains(t, out, "12 in = 1 ft")
}

func TestConvertTemperature(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "convert", "100", "celsius", "fahrenheit")
	require.NoError(t, err)
	assert.Contains(t, out, "100 °C = 212 °F")
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "convert", "1", "furlong", "feet")
	assert.ErrorIs(t, err, measure.ErrUnknownUnit)
}

func TestConvertCrossCategory(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "convert", "1", "kilogram", "feet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot combine")
}

func TestConvertNotANumber(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "convert", "abc", "inch", "feet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestAddCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "add", "2", "yard", "36", "inch", "--in", "feet")
	require.NoError(t, err)
	assert.Contains(t, out, "2 yd + 36 in = 9 ft")
}

func TestAddDefaultsToFirstUnit(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "add", "2", "kg", "2000", "g")
	require.NoError(t, err)
	assert.Contains(t, out, "2 kg + 2000 g = 4 kg")
}

func TestAddTemperatureFails(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "add", "20", "celsius", "10", "celsius")
	assert.ErrorIs(t, err, measure.ErrUnsupportedOperation)
}

func TestSubCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "sub", "2", "yard", "3", "feet")
	require.NoError(t, err)
	assert.Contains(t, out, "2 yd - 3 ft = 1 yd")
}

func TestDivCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "div", "6", "feet", "1", "yard")
	require.NoError(t, err)
	assert.Contains(t, out, "6 ft / 1 yd = 2")
}

func TestDivByZero(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "div", "6", "feet", "0", "inch")
	assert.ErrorIs(t, err, measure.ErrDivisionByZero)
}

func TestEqCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "eq", "1", "yard", "3", "feet")
	require.NoError(t, err)
	assert.Contains(t, out, "1 yd vs 3 ft: equal")

	out, err = runCLI(t, t.TempDir(), "eq", "1", "yard", "3.01", "feet")
	require.NoError(t, err)
	assert.Contains(t, out, "not equal")
}

func TestEqMinusForty(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "eq", "-40", "celsius", "-40", "fahrenheit")
	require.NoError(t, err)
	assert.Contains(t, out, "equal")
	assert.NotContains(t, out, "not equal")
}

func TestUnitsCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "units")
	require.NoError(t, err)
	assert.Contains(t, out, "centimeter")
	assert.Contains(t, out, "kilogram")
	assert.Contains(t, out, "gallon")
	assert.Contains(t, out, "non-linear")

	out, err = runCLI(t, t.TempDir(), "units", "weight")
	require.NoError(t, err)
	assert.Contains(t, out, "pound")
	assert.NotContains(t, out, "centimeter")

	_, err = runCLI(t, t.TempDir(), "units", "pressure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestInitAndHistory(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	_, err = os.Stat(filepath.Join(dir, "cfg", "config.yaml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "data", "gauge.db"))
	assert.NoError(t, err)

	_, err = runCLI(t, dir, "convert", "12", "inch", "feet")
	require.NoError(t, err)

	out, err = runCLI(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "convert")
	assert.Contains(t, out, "12 in => 1 ft")
}

func TestNoHistoryFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "convert", "12", "inch", "feet", "--no-history")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "history is empty")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{value: 12, precision: 6, want: "12"},
		{value: 1.5, precision: 6, want: "1.5"},
		{value: 274.32, precision: 6, want: "274.32"},
		{value: 0.333333333, precision: 4, want: "0.3333"},
		{value: -0.0000001, precision: 2, want: "0"},
		{value: 2, precision: 0, want: "2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.value, tt.precision))
	}
}
