// Package sim is the closed-form cost model behind every cmbench experiment.
//
// It owns the token Accumulator, the per-architecture token consumption rules,
// the ablation presets and the derivation of cost-per-1k and efficiency scores.
// Nothing here performs I/O; the only nondeterminism enters through a Source.
package sim
