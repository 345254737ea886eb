package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/pkg/measure"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List the supported units",
		Long: "List the units of every category, or of one category, with their\n" +
			"symbols and base-unit conversion factors.",
		Args: cobra.MaximumNArgs(1),
		RunE: runUnits,
	}
}

func runUnits(cmd *cobra.Command, args []string) error {
	categories := measure.Categories()
	if len(args) == 1 {
		category := strings.ToLower(strings.TrimSpace(args[0]))
		if measure.UnitsIn(category) == nil {
			return fmt.Errorf("unknown category %q (one of: %s)",
				args[0], strings.Join(categories, ", "))
		}
		categories = []string{category}
	}

	var lines []string
	for i, category := range categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, category)
		for _, u := range measure.UnitsIn(category) {
			lines = append(lines, fmt.Sprintf("  %-12s %-4s %s", u.Name(), u.Symbol(), describeFactor(u)))
		}
	}
	printResult(cmd, lines...)
	return nil
}

// describeFactor renders a unit's base-unit factor, or marks the
// conversion as non-linear where no scalar factor exists.
func describeFactor(u measure.Unit) string {
	f, err := u.Factor()
	if err != nil {
		return "non-linear"
	}
	return "factor " + strconv.FormatFloat(f, 'g', -1, 64)
}
