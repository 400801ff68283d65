package engine

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/cmbench/internal/config"
	"github.com/daryltucker/cmbench/internal/model"
	"github.com/daryltucker/cmbench/internal/output"
	"github.com/daryltucker/cmbench/internal/sim"
)

func TestMain(m *testing.M) {
	output.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type midpointSource struct{}

func (midpointSource) Uniform(lo, hi float64) float64 { return (lo + hi) / 2 }

func methodNames() []string {
	var names []string
	for _, m := range sim.Methods() {
		names = append(names, m.String())
	}
	return names
}

// assertCrossProduct checks rows are workloads x methods, workload-major.
func assertCrossProduct(t *testing.T, rows []model.Row, workloads, methods []string) {
	t.Helper()
	require.Len(t, rows, len(workloads)*len(methods))
	i := 0
	for _, w := range workloads {
		for _, m := range methods {
			assert.Equal(t, w, rows[i].Workload, "row %d", i)
			assert.Equal(t, m, rows[i].Method, "row %d", i)
			i++
		}
	}
}

func findRow(t *testing.T, rows []model.Row, workload, method string) model.Row {
	t.Helper()
	for _, r := range rows {
		if r.Workload == workload && r.Method == method {
			return r
		}
	}
	t.Fatalf("no row for %s/%s", workload, method)
	return model.Row{}
}

func TestCostEfficiencyMidpoint(t *testing.T) {
	rep, err := CostEfficiency(20, sim.DefaultRates(), midpointSource{})
	require.NoError(t, err)
	assertCrossProduct(t, rep.Rows, []string{"20 queries"}, methodNames())

	cm := findRow(t, rep.Rows, "20 queries", "Proposed-CM")
	assert.InDelta(t, 81.5, cm.F1, 1e-9)
	assert.InDelta(t, 7600.0, cm.AvgTokens, 1e-9)
	assert.InDelta(t, 0.076, cm.CostPer1K, 1e-12)
	assert.InDelta(t, 1072.4, cm.EScore, 0.05)

	naive := findRow(t, rep.Rows, "20 queries", "Naive-RAG")
	assert.InDelta(t, 57.5, naive.F1, 1e-9)
	assert.InDelta(t, 0.64, naive.CostPer1K, 1e-12)

	require.Len(t, rep.Notes, 1)
	assert.Contains(t, rep.Notes[0], "Proposed-CM is 11.94x more cost-efficient than Naive-RAG")
}

func TestCostEfficiencyDeterministic(t *testing.T) {
	a, err := CostEfficiency(20, sim.DefaultRates(), sim.NewSeededSource(42))
	require.NoError(t, err)
	b, err := CostEfficiency(20, sim.DefaultRates(), sim.NewSeededSource(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	p := map[string]sim.QueryProfile{}
	for _, m := range sim.Methods() {
		p[m.String()] = m.QueryProfile()
	}
	for _, r := range a.Rows {
		assert.GreaterOrEqual(t, r.F1, p[r.Method].QualityLow)
		assert.Less(t, r.F1, p[r.Method].QualityHigh)
	}
}

func TestCostEfficiencyZeroQueries(t *testing.T) {
	_, err := CostEfficiency(0, sim.DefaultRates(), midpointSource{})
	assert.True(t, errors.Is(err, sim.ErrInvalidWorkload))
}

func TestDatasetEfficiency(t *testing.T) {
	rep, err := DatasetEfficiency(DatasetProfiles, LiteratureF1, sim.DefaultRates())
	require.NoError(t, err)
	assertCrossProduct(t, rep.Rows, []string{"MMLongBench-Doc", "SEC-10K", "CUAD"}, methodNames())

	cm := findRow(t, rep.Rows, "MMLongBench-Doc", "Proposed-CM")
	assert.Equal(t, 81.0, cm.F1)
	assert.Equal(t, 480.0, cm.AvgTokens)
	assert.InDelta(t, 0.0048, cm.CostPer1K, 1e-12)
	assert.InDelta(t, 16875.0, cm.EScore, 1e-6)

	multi := findRow(t, rep.Rows, "SEC-10K", "Standard-MultiAgent")
	assert.Equal(t, 3360.0, multi.AvgTokens)
	assert.Equal(t, 61.0, multi.F1)

	for i := 0; i < len(rep.Rows); i += 3 {
		assert.GreaterOrEqual(t, rep.Rows[i].AvgTokens, rep.Rows[i+1].AvgTokens)
		assert.GreaterOrEqual(t, rep.Rows[i+1].AvgTokens, rep.Rows[i+2].AvgTokens)
	}
}

func TestDatasetEfficiencyTableShowsSubCentCosts(t *testing.T) {
	rep, err := DatasetEfficiency(DatasetProfiles, LiteratureF1, sim.DefaultRates())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.WriteTable(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "0.0048")
	assert.Contains(t, out, "0.0034")
	assert.Contains(t, out, "0.0101")
	assert.NotContains(t, out, "| 0.00 |")
}

func TestCostEfficiencyTableCostMatchesScore(t *testing.T) {
	rep, err := CostEfficiency(20, sim.DefaultRates(), midpointSource{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.WriteTable(&buf, rep))
	assert.Contains(t, buf.String(), "0.0760")
	assert.Contains(t, buf.String(), "0.6400")
	assert.Contains(t, buf.String(), "1072.37")
}

func TestDatasetEfficiencyMissingEntry(t *testing.T) {
	partial := sim.QualityTable{
		sim.MMLongBenchDoc: {sim.NaiveRAG: 58.0, sim.StandardMultiAgent: 63.0},
	}
	_, err := DatasetEfficiency(DatasetProfiles[:1], partial, sim.DefaultRates())
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrMissingEntry))
	assert.Contains(t, err.Error(), "Proposed-CM")
}

func TestDatasetEfficiencyZeroCost(t *testing.T) {
	empty := []DatasetProfile{{Dataset: sim.CUAD, Queries: 10, Chunks: 0, ChunkSize: 350}}
	_, err := DatasetEfficiency(empty, LiteratureF1, sim.DefaultRates())
	assert.True(t, errors.Is(err, sim.ErrUndefinedScore))
}

func TestContextScaling(t *testing.T) {
	rep, err := ContextScaling(ContextScales, sim.DefaultRates())
	require.NoError(t, err)
	assertCrossProduct(t, rep.Rows, []string{"2K", "8K", "20K", "50K", "100K", "200K+"}, methodNames())

	cm := findRow(t, rep.Rows, "100K", "Proposed-CM")
	assert.Equal(t, 15000.0, cm.AvgTokens)
	assert.InDelta(t, 0.15, cm.CostPer1K, 1e-12)
	assert.Zero(t, cm.EScore)
	assert.False(t, rep.Has(model.ColEScore))
}

func TestAblationStudy(t *testing.T) {
	rep, err := AblationStudy(AblationDatasets)
	require.NoError(t, err)

	var configs []string
	for _, a := range sim.Ablations() {
		configs = append(configs, a.String())
	}
	assertCrossProduct(t, rep.Rows, []string{"MMLongBench-Doc", "CUAD", "SEC-10K"}, configs)

	for _, d := range []string{"MMLongBench-Doc", "CUAD", "SEC-10K"} {
		full := findRow(t, rep.Rows, d, "Full-CM")
		noSync := findRow(t, rep.Rows, d, "Without Synchronization")
		assert.InDelta(t, 6.667, full.EScore, 0.001)
		assert.InDelta(t, 2.321, noSync.EScore, 0.001)
		assert.Less(t, noSync.EScore, full.EScore)
	}
	assert.Equal(t, 3, rep.Decimals[model.ColEScore])
}

func TestScalabilityLatency(t *testing.T) {
	rep, err := ScalabilityLatency(ContextSizes, sim.DefaultRates())
	require.NoError(t, err)
	assertCrossProduct(t, rep.Rows,
		[]string{"2000", "8000", "20000", "50000", "100000", "200000"}, methodNames())

	cm := findRow(t, rep.Rows, "100000", "Proposed-CM")
	assert.Equal(t, 15000.0, cm.AvgTokens)
	assert.InDelta(t, 2250.0, cm.LatencyMS, 1e-9)
	assert.InDelta(t, 0.15, cm.CostPerQuery, 1e-12)
	assert.Zero(t, cm.CostPer1K)
	assert.True(t, rep.Has(model.ColCostPerQuery))
	assert.False(t, rep.Has(model.ColCostPer1K))

	naive := findRow(t, rep.Rows, "200000", "Naive-RAG")
	assert.InDelta(t, 30000.0, naive.LatencyMS, 1e-9)
	assert.InDelta(t, 2.0, naive.CostPerQuery, 1e-12)
}

func TestScalabilityLatencyRejectsNegativeSize(t *testing.T) {
	_, err := ScalabilityLatency([]int{-1}, sim.DefaultRates())
	assert.True(t, errors.Is(err, sim.ErrInvalidWorkload))
}

func TestRegistryMatchesDefaults(t *testing.T) {
	assert.Equal(t, config.DefaultExperiments, IDs())

	exp, ok := Lookup(IDAblation)
	require.True(t, ok)
	assert.Equal(t, "Ablation study", exp.Title)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(dir, "out")

	var stdout bytes.Buffer
	reports, err := Run(cfg, &stdout)
	require.NoError(t, err)
	require.Len(t, reports, 5)

	total := 0
	for i, rep := range reports {
		assert.Equal(t, cfg.Experiments[i], rep.ID)
		assert.Contains(t, stdout.String(), "["+rep.ID+"]")
		total += len(rep.Rows)
	}
	assert.Equal(t, 3+9+18+12+18, total)

	assert.Equal(t, total+1, countLines(t, filepath.Join(cfg.OutputDir, "cmbench_results.csv")))
	assert.Equal(t, total, countLines(t, filepath.Join(cfg.OutputDir, "cmbench_results.jsonl")))
}

func TestRunReproducible(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Formats = []string{config.FormatText}

	var a, b bytes.Buffer
	_, err := Run(cfg, &a)
	require.NoError(t, err)
	_, err = Run(cfg, &b)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Experiments = []string{"unknown"}
	_, err := Run(cfg, io.Discard)
	assert.ErrorContains(t, err, "invalid configuration")
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	require.NoError(t, sc.Err())
	return n
}
