/*
PURPOSE:
  Token cost accounting for a single (workload, method) evaluation.

REQUIREMENTS:
  - Zero-initialized on creation.
  - Accumulate only ever adds; the total never decreases.

ARCHITECTURE INTEGRATION:
  - Created by: internal/engine drivers, one per evaluation.
  - Fed by: the Simulate* functions in this package.

ERROR HANDLING:
  - None. Negative inputs are ignored so the total stays monotonic.

IMPLEMENTATION RULES:
  - Never share an Accumulator between evaluations.
*/

package sim

// Accumulator counts the token units consumed by one evaluation.
type Accumulator struct {
	total int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Accumulate adds n tokens to the running total.
func (a *Accumulator) Accumulate(n int) {
	if n <= 0 {
		return
	}
	a.total += n
}

// Total returns the tokens consumed so far.
func (a *Accumulator) Total() int {
	return a.total
}
