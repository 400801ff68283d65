/*
PURPOSE:
  Derived metrics: average tokens, cost per 1k tokens, efficiency score and
  latency, all computed from token counts produced by the simulators.

REQUIREMENTS:
  - Unit chain is literal: tokens -> thousands of tokens -> dollars.
  - Efficiency score = quality / cost_per_1k, never computed for zero cost.
  - Latency is an independent linear model over the same token input.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine drivers.

ERROR HANDLING:
  - ErrUndefinedScore for zero cost.
  - ErrInvalidWorkload for a non-positive query count.
*/

package sim

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultCostPer1K is $10 per million tokens.
	DefaultCostPer1K = 0.01
	// DefaultLatencyPer1KMS is the simulated latency of 1000 tokens.
	DefaultLatencyPer1KMS = 150.0
)

// Rates are the pricing and latency constants of the cost model.
type Rates struct {
	CostPer1K      float64
	LatencyPer1KMS float64
}

// DefaultRates returns the published constants.
func DefaultRates() Rates {
	return Rates{CostPer1K: DefaultCostPer1K, LatencyPer1KMS: DefaultLatencyPer1KMS}
}

// AverageTokens divides accumulated tokens over the number of queries.
func AverageTokens(total, queries int) (float64, error) {
	if queries <= 0 {
		return 0, errors.Wrapf(ErrInvalidWorkload, "query count %d", queries)
	}
	return float64(total) / float64(queries), nil
}

// Cost converts an absolute token count into dollars at rate per 1000 tokens.
func (r Rates) Cost(tokens float64) float64 {
	return (tokens / 1000.0) * r.CostPer1K
}

// Latency returns the simulated latency in milliseconds for tokens.
func (r Rates) Latency(tokens int) float64 {
	return (float64(tokens) / 1000.0) * r.LatencyPer1KMS
}

// EfficiencyScore is quality per dollar of cost.
func EfficiencyScore(quality, costPer1K float64) (float64, error) {
	if costPer1K == 0 || math.IsNaN(costPer1K) {
		return 0, errors.Wrapf(ErrUndefinedScore, "quality %.2f", quality)
	}
	return quality / costPer1K, nil
}

// Metrics is the derived view of one evaluation.
type Metrics struct {
	AvgTokens float64
	CostPer1K float64
	EScore    float64
}

// Derive computes average tokens, cost and efficiency for an evaluation that
// consumed total tokens over queries queries at the given quality.
func (r Rates) Derive(total, queries int, quality float64) (Metrics, error) {
	avg, err := AverageTokens(total, queries)
	if err != nil {
		return Metrics{}, err
	}
	cost := r.Cost(avg)
	score, err := EfficiencyScore(quality, cost)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{AvgTokens: avg, CostPer1K: cost, EScore: score}, nil
}
