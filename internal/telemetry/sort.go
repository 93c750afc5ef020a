package telemetry

import (
	"sort"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// Direction flips a comparator.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ProcessField selects the process list sort column.
type ProcessField int

const (
	ProcessByCPU ProcessField = iota
	ProcessByMemory
	ProcessBySwap
	ProcessByRuntime
)

// ProcessSort is the active ordering of the process list.
type ProcessSort struct {
	Field ProcessField
	Dir   Direction
}

// ComponentField selects the component list sort column.
type ComponentField int

const (
	ComponentByTemperature ComponentField = iota
	ComponentByCritical
)

// ComponentSort is the active ordering of the component list.
type ComponentSort struct {
	Field ComponentField
	Dir   Direction
}

// SortProcesses orders procs in place. The sort is stable: rows comparing
// equal keep their relative order.
func SortProcesses(procs []probe.ProcessInfo, spec ProcessSort) {
	less := func(a, b probe.ProcessInfo) bool {
		switch spec.Field {
		case ProcessByMemory:
			return a.MemoryUsage < b.MemoryUsage
		case ProcessBySwap:
			return a.SwapUsage < b.SwapUsage
		case ProcessByRuntime:
			return a.Runtime < b.Runtime
		default:
			return a.CPUUsage < b.CPUUsage
		}
	}
	sort.SliceStable(procs, func(i, j int) bool {
		if spec.Dir == Descending {
			return less(procs[j], procs[i])
		}
		return less(procs[i], procs[j])
	})
}

// SortComponents orders comps in place, stably. A missing critical
// temperature compares as 0; that is policy, not an error.
func SortComponents(comps []probe.ComponentInfo, spec ComponentSort) {
	critical := func(c probe.ComponentInfo) float64 {
		if c.Critical == nil {
			return 0
		}
		return *c.Critical
	}
	less := func(a, b probe.ComponentInfo) bool {
		if spec.Field == ComponentByCritical {
			return critical(a) < critical(b)
		}
		return a.Temperature < b.Temperature
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if spec.Dir == Descending {
			return less(comps[j], comps[i])
		}
		return less(comps[i], comps[j])
	})
}
