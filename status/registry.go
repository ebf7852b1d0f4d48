// Package status collects runtime counters shown on the console status bar
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and host loop
const (
	KeyFrames        = "frame.count"
	KeyFrameMillis   = "frame.ms"
	KeyCommands      = "command.count"
	KeyWindowToggles = "window.toggles"
	KeyErrors        = "error.count"
	KeyWindowMode    = "window.mode"
	KeySelection     = "selection"
	KeyAudio         = "audio.enabled"
)

// Registry is the central metrics facade
// Writers cache pointers once; updates go straight to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as "key=value" pairs, grouped by type, keys sorted
func (r *Registry) Line() string {
	var parts []string
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, k+"="+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
