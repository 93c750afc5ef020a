package telemetry

import (
	"math"
	"sort"
	"time"
)

// Point is one chart sample: seconds elapsed since program start, and the
// value at that moment.
type Point struct {
	Elapsed float64
	Value   float64
}

// Recorder accumulates append-only time series for chart lines. Series grow
// for the life of the process; nothing is ever evicted. That is a known
// limitation accepted for interactive sessions, not something to fix here.
type Recorder struct {
	interval float64 // seconds
	series   map[string][]Point
}

// NewRecorder builds a Recorder that accepts at most one sample per key per
// interval.
func NewRecorder(interval time.Duration) *Recorder {
	return &Recorder{
		interval: interval.Seconds(),
		series:   make(map[string][]Point),
	}
}

// Record appends a sample for key unless one was already recorded within the
// interval. The first sample for a key is always captured. This keeps chart
// density bounded no matter how often the caller redraws.
func (r *Recorder) Record(key string, elapsed, value float64) {
	pts := r.series[key]
	if len(pts) > 0 && elapsed-pts[len(pts)-1].Elapsed <= r.interval {
		return
	}
	r.series[key] = append(pts, Point{Elapsed: elapsed, Value: value})
}

// Series returns the samples recorded for key, in insertion order.
func (r *Recorder) Series(key string) []Point {
	return r.series[key]
}

// Values returns just the sample values for key, for chart plotting.
func (r *Recorder) Values(key string) []float64 {
	pts := r.series[key]
	values := make([]float64, len(pts))
	for i, p := range pts {
		values[i] = p.Value
	}
	return values
}

// Keys lists all recorded series keys, sorted for stable display.
func (r *Recorder) Keys() []string {
	keys := make([]string, 0, len(r.series))
	for k := range r.series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnitScale derives a human-friendly y-axis scale for a byte capacity by
// dividing by 1000 until the value drops below 1000, then flooring. It is
// computed once at startup and reused for the whole run even if the platform
// later reports a different capacity.
func UnitScale(total uint64) float64 {
	v := float64(total)
	for v > 1000 {
		v /= 1000
	}
	return math.Floor(v)
}
