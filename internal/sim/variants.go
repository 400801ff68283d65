/*
PURPOSE:
  Closed identifiers for the simulated architectures, datasets and ablation
  configurations, each mapped explicitly to its simulation constants.

REQUIREMENTS:
  - Iteration order of Methods(), Datasets() is the report order.
  - Every identifier has a display name matching the published tables.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine (drivers and tables), internal/output (labels).

ERROR HANDLING:
  - Unknown values panic in the constant switches: they can only come from a
    programming error, never from user input.

MAINTENANCE:
  - Adding a Method means adding a case to every switch below.
*/

package sim

import "fmt"

// Method is one of the compared reasoning architectures.
type Method int

const (
	NaiveRAG Method = iota
	StandardMultiAgent
	ProposedCM
)

// Methods returns every architecture in report order.
func Methods() []Method {
	return []Method{NaiveRAG, StandardMultiAgent, ProposedCM}
}

func (m Method) String() string {
	switch m {
	case NaiveRAG:
		return "Naive-RAG"
	case StandardMultiAgent:
		return "Standard-MultiAgent"
	case ProposedCM:
		return "Proposed-CM"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// QueryProfile is the fixed per-query behaviour of a method in the
// fixed-query experiment.
type QueryProfile struct {
	TokensPerQuery int
	QualityLow     float64
	QualityHigh    float64
}

// QueryProfile returns the tokens consumed and quality range of one query.
func (m Method) QueryProfile() QueryProfile {
	switch m {
	case NaiveRAG:
		return QueryProfile{TokensPerQuery: 64000, QualityLow: 55, QualityHigh: 60}
	case StandardMultiAgent:
		return QueryProfile{TokensPerQuery: 26000, QualityLow: 60, QualityHigh: 65}
	case ProposedCM:
		return QueryProfile{TokensPerQuery: 7600, QualityLow: 80, QualityHigh: 83}
	}
	panic(fmt.Sprintf("sim: no query profile for %v", m))
}

// ChunkRatio is the share of retrieved chunk tokens a method passes on.
func (m Method) ChunkRatio() float64 {
	switch m {
	case NaiveRAG:
		return 1.0
	case StandardMultiAgent:
		return 0.4
	case ProposedCM:
		return 0.12
	}
	panic(fmt.Sprintf("sim: no chunk ratio for %v", m))
}

// ContextRatio is the share of the total document context a method keeps.
func (m Method) ContextRatio() float64 {
	switch m {
	case NaiveRAG:
		return 1.00
	case StandardMultiAgent:
		return 0.45
	case ProposedCM:
		return 0.15
	}
	panic(fmt.Sprintf("sim: no context ratio for %v", m))
}

// Dataset is one of the benchmark corpora.
type Dataset int

const (
	MMLongBenchDoc Dataset = iota
	SEC10K
	CUAD
)

// Datasets returns every dataset in the order used by the dataset experiment.
func Datasets() []Dataset {
	return []Dataset{MMLongBenchDoc, SEC10K, CUAD}
}

func (d Dataset) String() string {
	switch d {
	case MMLongBenchDoc:
		return "MMLongBench-Doc"
	case SEC10K:
		return "SEC-10K"
	case CUAD:
		return "CUAD"
	}
	return fmt.Sprintf("Dataset(%d)", int(d))
}

// Ablation is a variant of ProposedCM with one capability removed.
type Ablation int

const (
	Full Ablation = iota
	NoCompression
	NoVerification
	NoSynchronization
)

// Ablations returns every configuration, Full first.
func Ablations() []Ablation {
	return []Ablation{Full, NoCompression, NoVerification, NoSynchronization}
}

func (a Ablation) String() string {
	switch a {
	case Full:
		return "Full-CM"
	case NoCompression:
		return "Without Context Compression"
	case NoVerification:
		return "Without Verification"
	case NoSynchronization:
		return "Without Synchronization"
	}
	return fmt.Sprintf("Ablation(%d)", int(a))
}

// Preset returns the fixed quality and cost-per-1k of an ablation configuration.
func (a Ablation) Preset() (quality, costPer1K float64) {
	switch a {
	case Full:
		return 80.0, 12.0
	case NoCompression:
		return 72.0, 22.0
	case NoVerification:
		return 74.0, 15.0
	case NoSynchronization:
		return 65.0, 28.0
	}
	panic(fmt.Sprintf("sim: no preset for %v", a))
}
