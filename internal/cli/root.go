/*
PURPOSE:
  Defines the root Cobra command for the cmbench CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logger is configured before any subcommand runs.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/cmbench/main.go
  - Calls: Child commands (run, list)

ERROR HANDLING:
  - Returns error to main.go for exit code handling; main is the only
    place that prints it.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

RELATED FILES:
  - cmd/cmbench/main.go
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/cmbench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "cmbench",
		Short: "Cost/efficiency simulation harness for reasoning architectures",
		Long: `Simulates Naive-RAG, Standard-MultiAgent and Proposed-CM architectures over
synthetic workloads and reports accuracy, token cost, latency and efficiency scores.
Use 'run --help' for experiment options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return output.Configure(os.Stderr, logLevel, logFormat)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cmbench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
}
