package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the gauge release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/gauge"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gauge version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gauge v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
