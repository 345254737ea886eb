// Package cli implements the gauge command-line interface: unit
// conversion, quantity arithmetic, tolerance equality, the unit
// listing, and the operation history.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	plain     bool
	noHistory bool
}

var flags rootFlags

// NewRootCmd creates the top-level "gauge" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gauge",
		Short: "Convert and combine physical quantities",
		Long: "Gauge converts values between units of length, weight, volume,\n" +
			"and temperature, adds and compares quantities within a category,\n" +
			"and keeps a local history of operations.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .gauge)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .gauge-db)")
	root.PersistentFlags().BoolVar(&flags.plain, "plain", false, "plain output without styling")
	root.PersistentFlags().BoolVar(&flags.noHistory, "no-history", false, "do not record this operation in the history")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newSubCmd())
	root.AddCommand(newDivCmd())
	root.AddCommand(newEqCmd())
	root.AddCommand(newUnitsCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var sysErr *systemError
		if errors.As(err, &sysErr) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("GAUGE_CONFIG_DIR"); v != "" {
		return v
	}
	return ".gauge"
}

// systemError marks failures of the environment (filesystem, database)
// rather than of the user's input, so Execute can exit with exitSysError.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func systemErrorf(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}
