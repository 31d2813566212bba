package conformance

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// A Reporter receives the mismatches found by a Checker. Report runs with the
// Checker's lock held and must not start another run on the same Checker.
type Reporter interface {
	Report(m Mismatch)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(m Mismatch)

// Report calls fn(m).
func (fn ReporterFunc) Report(m Mismatch) { fn(m) }

// Recorder is a Reporter that keeps all mismatches in memory.
type Recorder struct {
	mu   sync.Mutex
	list []Mismatch
}

// Report records m.
func (r *Recorder) Report(m Mismatch) {
	r.mu.Lock()
	r.list = append(r.list, m)
	r.mu.Unlock()
}

// Mismatches returns a copy of the recorded mismatches, in report order.
func (r *Recorder) Mismatches() []Mismatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Mismatch(nil), r.list...)
}

// Len returns the number of recorded mismatches.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.list)
}

// Reset forgets all recorded mismatches.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.list = nil
	r.mu.Unlock()
}

// LogReporter logs every mismatch as an error with its fields.
type LogReporter struct {
	Logger log.FieldLogger
}

// Report logs m.
func (r LogReporter) Report(m Mismatch) {
	logger := r.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.WithFields(log.Fields{
		"test":     m.Test,
		"kind":     m.Kind.String(),
		"label":    m.Label,
		"expected": m.Expected,
		"actual":   m.Actual,
	}).Error("Mismatch")
}

// multiReporter forwards mismatches to several reporters.
type multiReporter []Reporter

func (mr multiReporter) Report(m Mismatch) {
	for _, r := range mr {
		r.Report(m)
	}
}
