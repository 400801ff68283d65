/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the selected experiments.

REQUIREMENTS:
  - Load config first, then apply flag overrides.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or any experiment fails.

USAGE:
  cmbench run --experiments ablation,context-scaling
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/cmbench/internal/config"
	"github.com/daryltucker/cmbench/internal/engine"
)

var (
	seedOverride        uint64
	queriesOverride     int
	outputOverride      string
	experimentsOverride []string
	formatsOverride     []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the experiment suite",
	Long: `Runs the selected experiments in order. Every experiment iterates its workloads
(datasets, context sizes or a fixed query count) and, for each, every method:
1. Cost efficiency: fixed tokens per query, quality drawn from a seeded generator.
2. Dataset efficiency: chunk-based token model scored with literature F1.
3. Context scaling: effective context per document size.
4. Ablation: fixed presets of the context manager with one module removed.
5. Scalability: tokens, latency and cost per query per document size.

Tables are printed to stdout; CSV and JSON Lines copies are written to the output directory.`,
	Example: `  # Run everything with defaults (uses cmbench.yaml if present)
  cmbench run

  # Only the ablation and scaling tables, no files
  cmbench run --experiments ablation,context-scaling --formats text

  # Different seed, results under ./results
  cmbench run --seed 7 -o ./results`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("seed") {
			cfg.Seed = seedOverride
		}
		if flags.Changed("queries") {
			cfg.NumQueries = queriesOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if len(experimentsOverride) > 0 {
			cfg.Experiments = experimentsOverride
		}
		if len(formatsOverride) > 0 {
			cfg.Formats = formatsOverride
		}

		_, err = engine.Run(cfg, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64Var(&seedOverride, "seed", 0, "Seed for the quality generator (overrides config)")
	runCmd.Flags().IntVar(&queriesOverride, "queries", 0, "Queries per method in the cost-efficiency experiment")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().StringSliceVar(&experimentsOverride, "experiments", nil, "Comma-separated list of experiment ids to run")
	runCmd.Flags().StringSliceVar(&formatsOverride, "formats", nil, "Comma-separated output formats: text, csv, json")
}
