// File: steplog.go
// Role: StepLog, the immutable result of Trace.
// Concurrency:
//   - Read-only after Trace returns; At and Steps hand out copies of Path.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// StepLog is the ordered, immutable trace produced by Trace for one
// (snapshot, source, target) triple. The last record is always terminal.
type StepLog struct {
	steps       []Step
	source      string
	target      string
	fingerprint string
}

// Len returns the number of records.
func (l *StepLog) Len() int {
	if l == nil {
		return 0
	}

	return len(l.steps)
}

// At returns the i-th record. Panics if i is out of range, like slice indexing.
// The returned Path slice is a copy.
func (l *StepLog) At(i int) Step {
	st := l.steps[i]
	if st.Path != nil {
		st.Path = append([]string(nil), st.Path...)
	}

	return st
}

// Steps returns a copy of all records.
func (l *StepLog) Steps() []Step {
	out := make([]Step, len(l.steps))
	for i := range l.steps {
		out[i] = l.At(i)
	}

	return out
}

// Terminal returns the last record.
func (l *StepLog) Terminal() Step { return l.At(len(l.steps) - 1) }

// Source returns the start node the log was generated for.
func (l *StepLog) Source() string { return l.source }

// Target returns the end node, or "" when none was requested.
func (l *StepLog) Target() string { return l.target }

// Fingerprint returns the fingerprint of the snapshot the log was built from.
func (l *StepLog) Fingerprint() string { return l.fingerprint }

// ValidFor reports whether the log was generated from s. A log must never be
// replayed against a different snapshot.
func (l *StepLog) ValidFor(s *core.Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	if s.Fingerprint() != l.fingerprint {
		return fmt.Errorf("%w: log %.8s, snapshot %.8s", ErrStaleLog, l.fingerprint, s.Fingerprint())
	}

	return nil
}

// Path returns the shortest path and its total when the log ends in a Path
// record.
func (l *StepLog) Path() ([]string, float64, bool) {
	t := l.Terminal()
	if t.Kind != KindPath {
		return nil, 0, false
	}

	return t.Path, t.Total, true
}

// FinalDistances returns the distance snapshot of the terminal record.
func (l *StepLog) FinalDistances() DistanceTable { return l.steps[len(l.steps)-1].Snapshot }
