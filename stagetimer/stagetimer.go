// Package stagetimer measures how long each setup step takes.
package stagetimer

import (
	"fmt"
	"io"
	"time"

	"github.com/loov/hrtime"
)

// Stage is one measured step.
type Stage struct {
	Name    string
	Elapsed time.Duration
	Failed  bool
}

// Timer records stages in the order they ran. It is not safe for concurrent
// use; setup runs on the main thread only.
type Timer struct {
	now    func() time.Duration
	stages []Stage
}

// New returns a Timer backed by the high resolution clock.
func New() *Timer {
	return &Timer{now: hrtime.Now}
}

// Time runs fn and records its duration under name. The error of fn is
// returned unchanged.
func (t *Timer) Time(name string, fn func() error) error {
	start := t.now()
	err := fn()
	t.stages = append(t.stages, Stage{
		Name:    name,
		Elapsed: t.now() - start,
		Failed:  err != nil,
	})
	return err
}

// Stages returns the recorded stages.
func (t *Timer) Stages() []Stage {
	return t.stages
}

// Total is the sum of all recorded stages.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, s := range t.stages {
		total += s.Elapsed
	}
	return total
}

// Report writes one line per stage followed by the total.
func (t *Timer) Report(w io.Writer) {
	for _, s := range t.stages {
		suffix := ""
		if s.Failed {
			suffix = " (failed)"
		}
		fmt.Fprintf(w, "%-24s %12s%s\n", s.Name, s.Elapsed, suffix)
	}
	fmt.Fprintf(w, "%-24s %12s\n", "total", t.Total())
}
