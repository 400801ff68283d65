/*
PURPOSE:
  Defines the core data structures used throughout cmbench.
  These models represent experiment result rows and the reports that group them.

REQUIREMENTS:
  - One Row per (workload, method) pair, immutable once built.
  - A Report keeps rows in workload-major, method-minor order.
  - Each Report declares which columns apply to its rows.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - JSON tags are the NDJSON field names.

USAGE:
  row := model.Row{Experiment: "ablation", Workload: "CUAD", ...}

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add a field and a Column, then update the writers.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go
  - internal/output/table.go
*/

package model

// Column identifies a rendered field of a Row.
type Column string

const (
	ColWorkload     Column = "workload"
	ColMethod       Column = "method"
	ColF1           Column = "f1"
	ColAvgTokens    Column = "avg_tokens"
	ColCostPer1K    Column = "cost_1k"
	ColEScore       Column = "e_score"
	ColLatencyMS    Column = "latency_ms"
	// ColCostPerQuery is the dollar cost of one whole query, as opposed to
	// ColCostPer1K which is normalized per 1000 tokens.
	ColCostPerQuery Column = "cost_per_query"
)

// AllColumns is the fixed column order of tabular file output.
var AllColumns = []Column{
	ColWorkload, ColMethod, ColF1, ColAvgTokens,
	ColCostPer1K, ColEScore, ColLatencyMS, ColCostPerQuery,
}

// Row represents the outcome of one (workload, method) evaluation.
// Only the fields named by the owning Report's Columns carry meaning; the
// rest are zero.
type Row struct {
	Experiment   string  `json:"experiment"`
	Workload     string  `json:"workload"`
	Method       string  `json:"method"`
	F1           float64 `json:"f1,omitempty"`
	AvgTokens    float64 `json:"avg_tokens,omitempty"`
	CostPer1K    float64 `json:"cost_1k,omitempty"`
	EScore       float64 `json:"e_score,omitempty"`
	LatencyMS    float64 `json:"latency_ms,omitempty"`
	CostPerQuery float64 `json:"cost_per_query,omitempty"`
}

// Value returns the numeric field backing c. Label columns return 0.
func (r Row) Value(c Column) float64 {
	switch c {
	case ColF1:
		return r.F1
	case ColAvgTokens:
		return r.AvgTokens
	case ColCostPer1K:
		return r.CostPer1K
	case ColEScore:
		return r.EScore
	case ColLatencyMS:
		return r.LatencyMS
	case ColCostPerQuery:
		return r.CostPerQuery
	}
	return 0
}

// Report is the ordered output of one experiment.
type Report struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Notes   []string `json:"notes,omitempty"`

	// Decimals overrides the two-decimal default per column when rendering.
	Decimals map[Column]int `json:"-"`
	// Headers overrides the default column header when rendering.
	Headers map[Column]string `json:"-"`
}

// Has reports whether c is rendered for this report.
func (r Report) Has(c Column) bool {
	for _, col := range r.Columns {
		if col == c {
			return true
		}
	}
	return false
}
