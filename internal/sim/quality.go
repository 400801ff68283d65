package sim

import "github.com/pkg/errors"

// QualityTable holds literature-reference F1 scores per dataset and method.
type QualityTable map[Dataset]map[Method]float64

// Lookup returns the reference F1 for (d, m). A missing pair is a
// configuration-consistency error.
func (t QualityTable) Lookup(d Dataset, m Method) (float64, error) {
	row, ok := t[d]
	if !ok {
		return 0, errors.Wrapf(ErrMissingEntry, "dataset %s", d)
	}
	f1, ok := row[m]
	if !ok {
		return 0, errors.Wrapf(ErrMissingEntry, "dataset %s, method %s", d, m)
	}
	return f1, nil
}
