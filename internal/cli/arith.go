package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/internal/store"
	"github.com/mesh-intelligence/gauge/pkg/measure"
)

func newAddCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "add <value1> <unit1> <value2> <unit2>",
		Short: "Add two quantities of one category",
		Long: "Add two quantities, optionally expressing the sum in an explicit\n" +
			"target unit, e.g.: gauge add 2 yard 36 inch --in feet",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(cmd, opAdd, args, target)
		},
	}
	cmd.Flags().StringVar(&target, "in", "", "unit to express the result in (default: first operand's unit)")
	return cmd
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <value1> <unit1> <value2> <unit2>",
		Short: "Subtract one quantity from another",
		Long:  "Subtract the second quantity from the first; the result is\nexpressed in the first operand's unit.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(cmd, opSubtract, args, "")
		},
	}
}

func newDivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div <value1> <unit1> <value2> <unit2>",
		Short: "Divide one quantity by another",
		Long:  "Divide the first quantity by the second; the result is the\ndimensionless ratio of their base-unit values.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(cmd, opDivide, args, "")
		},
	}
}

func runArith(cmd *cobra.Command, op string, args []string, target string) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}

	raw1, u1, raw2, u2 := args[0], args[1], args[2], args[3]
	category, err := sameCategory(u1, u2)
	if err != nil {
		return err
	}
	if target != "" {
		if _, err := sameCategory(u1, target); err != nil {
			return err
		}
	}

	var res opResult
	switch category {
	case measure.CategoryLength:
		res, err = arithAs(measure.ParseLengthUnit, op, raw1, u1, raw2, u2, target, st.precision)
	case measure.CategoryWeight:
		res, err = arithAs(measure.ParseWeightUnit, op, raw1, u1, raw2, u2, target, st.precision)
	case measure.CategoryVolume:
		res, err = arithAs(measure.ParseVolumeUnit, op, raw1, u1, raw2, u2, target, st.precision)
	case measure.CategoryTemperature:
		res, err = arithAs(measure.ParseTemperatureUnit, op, raw1, u1, raw2, u2, target, st.precision)
	}
	if err != nil {
		return err
	}

	printResult(cmd, fmt.Sprintf("%s = %s", res.input, res.result))
	recordHistory(cmd, st, store.Entry{
		Category:  category,
		Operation: op,
		Input:     res.input,
		Result:    res.result,
	})
	return nil
}

// arithAs performs the arithmetic for one concrete unit category.
func arithAs[U measure.Unit](parse func(string) (U, error), op, raw1, u1, raw2, u2, target string, precision int) (opResult, error) {
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

	operand := func(q *measure.Quantity[U]) string {
		return fmt.Sprintf("%s %s", formatValue(q.Value(), precision), q.Unit().Symbol())
	}

	switch op {
	case opAdd:
		targetUnit := unit1
		if target != "" {
			targetUnit, err = parse(target)
			if err != nil {
				return opResult{}, err
			}
		}
		sum, err := svc.AddWithTarget(q1, q2, targetUnit)
		if err != nil {
			return opResult{}, err
		}
		return opResult{
			input:  fmt.Sprintf("%s + %s", operand(q1), operand(q2)),
			result: fmt.Sprintf("%s %s", formatValue(sum.Value(), precision), sum.Unit().Symbol()),
		}, nil
	case opSubtract:
		diff, err := q1.Subtract(*q2)
		if err != nil {
			return opResult{}, err
		}
		return opResult{
			input:  fmt.Sprintf("%s - %s", operand(q1), operand(q2)),
			result: fmt.Sprintf("%s %s", formatValue(diff.Value(), precision), diff.Unit().Symbol()),
		}, nil
	case opDivide:
		ratio, err := q1.Divide(*q2)
		if err != nil {
			return opResult{}, err
		}
		return opResult{
			input:  fmt.Sprintf("%s / %s", operand(q1), operand(q2)),
			result: formatValue(ratio, precision),
		}, nil
	default:
		return opResult{}, fmt.Errorf("unknown operation %q", op)
	}
}
