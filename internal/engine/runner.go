/*
PURPOSE:
  High-level runner that orchestrates a benchmark run.
  Loops through the selected experiments and routes every report to the
  configured outputs.

REQUIREMENTS:
  User-specified:
  - Run every selected experiment in order.
  - Print tables and log rows to CSV/JSON.

  Implementation-discovered:
  - The randomness source is seeded once per run, before any experiment.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/sim, internal/output

ERROR HANDLING:
  - Any experiment error aborts the run: the tables are static, so a failure
    is a configuration-consistency bug, not a transient condition.

IMPLEMENTATION RULES:
  - Single pass, no parallelism, no retries.

USAGE:
  engine.Run(cfg, os.Stdout)

RELATED FILES:
  - internal/engine/registry.go
*/

package engine

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/daryltucker/cmbench/internal/config"
	"github.com/daryltucker/cmbench/internal/model"
	"github.com/daryltucker/cmbench/internal/output"
)

type reportWriter interface {
	WriteReport(model.Report) error
	Close() error
}

// Run executes the selected experiments and returns their reports.
// Text tables go to stdout; CSV and JSON files go to cfg.OutputDir.
func Run(cfg *config.Config, stdout io.Writer) ([]model.Report, error) {
	if err := cfg.Validate(IDs()); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	writers, err := openWriters(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, w := range writers {
			if err := w.Close(); err != nil {
				output.Logger.Error("Failed to close output", "error", err)
			}
		}
	}()

	suite := NewSuite(cfg)
	output.Logger.Info("Starting run", "seed", cfg.Seed, "queries", cfg.NumQueries, "experiments", len(cfg.Experiments))

	var reports []model.Report
	for _, id := range cfg.Experiments {
		exp, _ := Lookup(id)
		output.Logger.Info("Running experiment", "id", exp.ID, "workloads", exp.Workloads, "methods", exp.Methods)

		rep, err := exp.Run(suite)
		if err != nil {
			return reports, errors.Wrapf(err, "experiment %s failed", id)
		}

		if cfg.WantsFormat(config.FormatText) {
			if err := output.WriteTable(stdout, rep); err != nil {
				return reports, errors.Wrapf(err, "failed to print %s", id)
			}
		}
		for _, w := range writers {
			if err := w.WriteReport(rep); err != nil {
				return reports, errors.Wrapf(err, "failed to write %s rows", id)
			}
		}

		output.Logger.Info("Experiment complete", "id", exp.ID, "rows", len(rep.Rows))
		reports = append(reports, rep)
	}

	return reports, nil
}

func openWriters(cfg *config.Config) ([]reportWriter, error) {
	if !cfg.WantsFormat(config.FormatCSV) && !cfg.WantsFormat(config.FormatJSON) {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", cfg.OutputDir)
	}

	var writers []reportWriter
	if cfg.WantsFormat(config.FormatCSV) {
		csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile+".csv")
		w, err := output.NewCSVWriter(csvPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to init CSV writer at %s", csvPath)
		}
		output.Logger.Info("Writing CSV", "path", csvPath)
		writers = append(writers, w)
	}
	if cfg.WantsFormat(config.FormatJSON) {
		jsonPath := filepath.Join(cfg.OutputDir, cfg.OutputFile+".jsonl")
		w, err := output.NewJSONWriter(jsonPath)
		if err != nil {
			for _, open := range writers {
				open.Close()
			}
			return nil, errors.Wrapf(err, "failed to init JSON writer at %s", jsonPath)
		}
		output.Logger.Info("Writing JSON", "path", jsonPath)
		writers = append(writers, w)
	}
	return writers, nil
}
