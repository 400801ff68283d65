package sim

import "github.com/pkg/errors"

var (
	// ErrUndefinedScore is returned when an efficiency score is requested
	// for a zero cost.
	ErrUndefinedScore = errors.New("efficiency score undefined: zero cost")
	// ErrMissingEntry marks a static table without the requested entry.
	ErrMissingEntry = errors.New("missing table entry")
	// ErrInvalidWorkload marks a workload descriptor that cannot be simulated.
	ErrInvalidWorkload = errors.New("invalid workload")
)
