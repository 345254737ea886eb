package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/internal/store"
	"github.com/mesh-intelligence/gauge/pkg/measure"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a value between units of one category",
		Long: "Convert a value from one unit to another within the same\n" +
			"measurement category, e.g.: gauge convert 12 inch feet",
		Args: cobra.ExactArgs(3),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}

	raw, from, to := args[0], args[1], args[2]
	category, err := sameCategory(from, to)
	if err != nil {
		return err
	}

	var res opResult
	switch category {
	case measure.CategoryLength:
		res, err = convertAs(measure.ParseLengthUnit, raw, from, to, st.precision)
	case measure.CategoryWeight:
		res, err = convertAs(measure.ParseWeightUnit, raw, from, to, st.precision)
	case measure.CategoryVolume:
		res, err = convertAs(measure.ParseVolumeUnit, raw, from, to, st.precision)
	case measure.CategoryTemperature:
		res, err = convertAs(measure.ParseTemperatureUnit, raw, from, to, st.precision)
	}
	if err != nil {
		return err
	}

	printResult(cmd, fmt.Sprintf("%s = %s", res.input, res.result))
	recordHistory(cmd, st, store.Entry{
		Category:  category,
		Operation: opConvert,
		Input:     res.input,
		Result:    res.result,
	})
	return nil
}

// convertAs performs the conversion for one concrete unit category.
func convertAs[U measure.Unit](parse func(string) (U, error), raw, from, to string, precision int) (opResult, error) {
	fromUnit, err := parse(from)
	if err != nil {
		return opResult{}, err
	}
	toUnit, err := parse(to)
	if err != nil {
		return opResult{}, err
	}

	var svc measure.Service[U]
	q := svc.ParseQuantity(raw, fromUnit)
	if q == nil {
		return opResult{}, fmt.Errorf("not a number: %q", raw)
	}

	out, err := svc.ConvertValue(q.Value(), fromUnit, toUnit)
	if err != nil {
		return opResult{}, err
	}

	return opResult{
		input:  fmt.Sprintf("%s %s", formatValue(q.Value(), precision), fromUnit.Symbol()),
		result: fmt.Sprintf("%s %s", formatValue(out, precision), toUnit.Symbol()),
	}, nil
}
