package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/internal/store"
	"github.com/mesh-intelligence/gauge/pkg/measure"
)

// Operation names used for dispatch and history records.
const (
	opConvert  = "convert"
	opAdd      = "add"
	opSubtract = "subtract"
	opDivide   = "divide"
	opEquals   = "equals"
)

// opResult is what a dispatched operation reports back for display and
// history recording.
type opResult struct {
	input  string
	result string
}

// sameCategory resolves two unit names and requires them to belong to
// the same measurement category.
func sameCategory(u1, u2 string) (string, error) {
	c1, err := measure.LookupCategory(u1)
	if err != nil {
		return "", err
	}
	c2, err := measure.LookupCategory(u2)
	if err != nil {
		return "", err
	}
	if c1 != c2 {
		return "", fmt.Errorf("cannot combine %s and %s units", c1, c2)
	}
	return c1, nil
}

// formatValue renders a value with at most precision decimal places,
// trailing zeros trimmed.
func formatValue(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// printResult writes command output, framed unless --plain was given.
func printResult(cmd *cobra.Command, lines ...string) {
	fmt.Fprintln(cmd.OutOrStdout(), renderResult(flags.plain, lines...))
}

// recordHistory appends an entry to the history store. History is best
// effort: a store failure is reported on stderr but never fails the
// command that produced the result.
func recordHistory(cmd *cobra.Command, st settings, e store.Entry) {
	if !st.history {
		return
	}
	s, err := store.Open(st.dataDir)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history not recorded: %s\n", err)
		return
	}
	defer s.Close()
	if err := s.Record(e); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history not recorded: %s\n", err)
	}
}
