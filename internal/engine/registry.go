package engine

import (
	"github.com/daryltucker/cmbench/internal/config"
	"github.com/daryltucker/cmbench/internal/model"
	"github.com/daryltucker/cmbench/internal/sim"
)

// Experiment ids.
const (
	IDCostEfficiency     = "cost-efficiency"
	IDDatasetEfficiency  = "dataset-efficiency"
	IDContextScaling     = "context-scaling"
	IDAblation           = "ablation"
	IDScalabilityLatency = "scalability-latency"
)

// Suite carries the run-wide inputs of the drivers. Source is consumed only by
// the cost-efficiency experiment.
type Suite struct {
	Rates   sim.Rates
	Queries int
	Source  sim.Source
}

// NewSuite builds a Suite from cfg, seeding its Source exactly once.
func NewSuite(cfg *config.Config) *Suite {
	return &Suite{
		Rates:   sim.Rates{CostPer1K: cfg.CostPer1K, LatencyPer1KMS: cfg.LatencyPer1KMS},
		Queries: cfg.NumQueries,
		Source:  sim.NewSeededSource(cfg.Seed),
	}
}

// Experiment describes one registered experiment.
type Experiment struct {
	ID        string
	Title     string
	Workloads string
	Methods   string
	run       func(*Suite) (model.Report, error)
}

var registry = []Experiment{
	{
		ID:        IDCostEfficiency,
		Title:     "Cost efficiency (fixed queries)",
		Workloads: "fixed query count",
		Methods:   "architectures",
		run: func(s *Suite) (model.Report, error) {
			return CostEfficiency(s.Queries, s.Rates, s.Source)
		},
	},
	{
		ID:        IDDatasetEfficiency,
		Title:     "Dataset-level efficiency",
		Workloads: "datasets",
		Methods:   "architectures",
		run: func(s *Suite) (model.Report, error) {
			return DatasetEfficiency(DatasetProfiles, LiteratureF1, s.Rates)
		},
	},
	{
		ID:        IDContextScaling,
		Title:     "Context scaling robustness",
		Workloads: "context sizes",
		Methods:   "architectures",
		run: func(s *Suite) (model.Report, error) {
			return ContextScaling(ContextScales, s.Rates)
		},
	},
	{
		ID:        IDAblation,
		Title:     "Ablation study",
		Workloads: "datasets",
		Methods:   "ablation configurations",
		run: func(s *Suite) (model.Report, error) {
			return AblationStudy(AblationDatasets)
		},
	},
	{
		ID:        IDScalabilityLatency,
		Title:     "Scalability and latency",
		Workloads: "context sizes",
		Methods:   "architectures",
		run: func(s *Suite) (model.Report, error) {
			return ScalabilityLatency(ContextSizes, s.Rates)
		},
	},
}

// Experiments returns the registry in publication order.
func Experiments() []Experiment {
	return append([]Experiment(nil), registry...)
}

// IDs returns every registered experiment id.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, e := range registry {
		ids[i] = e.ID
	}
	return ids
}

// Lookup finds an experiment by id.
func Lookup(id string) (Experiment, bool) {
	for _, e := range registry {
		if e.ID == id {
			return e, true
		}
	}
	return Experiment{}, false
}

// Run executes the experiment against s.
func (e Experiment) Run(s *Suite) (model.Report, error) {
	return e.run(s)
}
