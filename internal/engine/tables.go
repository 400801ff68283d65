/*
PURPOSE:
  Static workload tables for the experiments: dataset profiles, literature
  F1 scores and context sizes.

REQUIREMENTS:
  - Slices, not maps, wherever order reaches the report.

RELATED FILES:
  - internal/sim/variants.go (per-method ratios and presets)
*/

package engine

import "github.com/daryltucker/cmbench/internal/sim"

// DatasetProfile is the per-dataset workload of the chunk-based model.
type DatasetProfile struct {
	Dataset   sim.Dataset
	Queries   int
	Chunks    int
	ChunkSize int
}

// DatasetProfiles lists the public dataset statistics in report order.
var DatasetProfiles = []DatasetProfile{
	{Dataset: sim.MMLongBenchDoc, Queries: 100, Chunks: 10, ChunkSize: 400},
	{Dataset: sim.SEC10K, Queries: 200, Chunks: 14, ChunkSize: 600},
	{Dataset: sim.CUAD, Queries: 150, Chunks: 8, ChunkSize: 350},
}

// LiteratureF1 holds reference F1 scores per dataset and method.
var LiteratureF1 = sim.QualityTable{
	sim.MMLongBenchDoc: {sim.NaiveRAG: 58.0, sim.StandardMultiAgent: 63.0, sim.ProposedCM: 81.0},
	sim.SEC10K:         {sim.NaiveRAG: 55.0, sim.StandardMultiAgent: 61.0, sim.ProposedCM: 79.0},
	sim.CUAD:           {sim.NaiveRAG: 57.0, sim.StandardMultiAgent: 62.0, sim.ProposedCM: 80.0},
}

// ContextScale is a labelled total document size.
type ContextScale struct {
	Label  string
	Tokens int
}

// ContextScales are the document sizes of the context-scaling experiment.
var ContextScales = []ContextScale{
	{"2K", 2000},
	{"8K", 8000},
	{"20K", 20000},
	{"50K", 50000},
	{"100K", 100000},
	{"200K+", 200000},
}

// ContextSizes are the document sizes of the scalability experiment.
var ContextSizes = []int{2000, 8000, 20000, 50000, 100000, 200000}

// AblationDatasets is the dataset order of the ablation table.
var AblationDatasets = []sim.Dataset{sim.MMLongBenchDoc, sim.CUAD, sim.SEC10K}
