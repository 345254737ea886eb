package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/internal/store"
	"github.com/mesh-intelligence/gauge/pkg/measure"
)

func newEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eq <value1> <unit1> <value2> <unit2>",
		Aliases: []string{"compare"},
		Short:   "Compare two quantities for equality",
		Long: "Compare two quantities of one category within the conversion\n" +
			"tolerance, e.g.: gauge eq 1 yard 3 feet",
		Args: cobra.ExactArgs(4),
		RunE: runEq,
	}
}

func runEq(cmd *cobra.Command, args []string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}

	raw1, u1, raw2, u2 := args[0], args[1], args[2], args[3]
	category, err := sameCategory(u1, u2)
	if err != nil {
		return err
	}

	var res opResult
	switch category {
	case measure.CategoryLength:
		res, err = eqAs(measure.ParseLengthUnit, raw1, u1, raw2, u2, st.precision)
	case measure.CategoryWeight:
		res, err = eqAs(measure.ParseWeightUnit, raw1, u1, raw2, u2, st.precision)
	case measure.CategoryVolume:
		res, err = eqAs(measure.ParseVolumeUnit, raw1, u1, raw2, u2, st.precision)
	case measure.CategoryTemperature:
		res, err = eqAs(measure.ParseTemperatureUnit, raw1, u1, raw2, u2, st.precision)
	}
	if err != nil {
		return err
	}

	printResult(cmd, fmt.Sprintf("%s: %s", res.input, res.result))
	recordHistory(cmd, st, store.Entry{
		Category:  category,
		Operation: opEquals,
		Input:     res.input,
		Result:    res.result,
	})
	return nil
}

// eqAs performs the comparison for one concrete unit category.
func eqAs[U measure.Unit](parse func(string) (U, error), raw1, u1, raw2, u2 string, precision int) (opResult, error) {
	unit1, err := parse(u1)
	if err != nil {
		return opResult{}, err
	}
	unit2, err := parse(u2)
	if err != nil {
		return opResult{}, err
	}

	var svc measure.Service[U]
	q1 := svc.ParseQuantity(raw1, unit1)
	if q1 == nil {
		return opResult{}, fmt.Errorf("not a number: %q", raw1)
	}
	q2 := svc.ParseQuantity(raw2, unit2)
	if q2 == nil {
		return opResult{}, fmt.Errorf("not a number: %q", raw2)
	}

	verdict := "not equal"
	if svc.AreEqual(q1, q2) {
		verdict = "equal"
	}
	return opResult{
		input: fmt.Sprintf("%s %s vs %s %s",
			formatValue(q1.Value(), precision), unit1.Symbol(),
			formatValue(q2.Value(), precision), unit2.Symbol()),
		result: verdict,
	}, nil
}
