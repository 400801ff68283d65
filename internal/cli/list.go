package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/cmbench/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available experiments",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range engine.Experiments() {
			fmt.Fprintf(out, "%-20s %s (%s x %s)\n", e.ID, e.Title, e.Workloads, e.Methods)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
