package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gauge/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show (0 for all)")
	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	st, err := loadSettings()
	if err != nil {
		return err
	}

	s, err := store.Open(st.dataDir)
	if err != nil {
		return systemErrorf("open history: %w", err)
	}
	defer s.Close()

	entries, err := s.List(limit)
	if err != nil {
		return systemErrorf("read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
		return nil
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %-11s %-9s %s => %s",
			e.PerformedAt.Local().Format(time.DateTime),
			e.Category, e.Operation, e.Input, e.Result))
	}
	printResult(cmd, lines...)
	return nil
}
