package telemetry

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// RefreshInterval is the fixed debounce interval for fast categories and for
// chart sample recording. The cadence is by design not configurable.
const RefreshInterval = time.Second

// Category enumerates the render-thread telemetry categories. Network is
// absent on purpose: it belongs to the background watcher.
type Category int

const (
	CategorySystem Category = iota
	CategoryCPU
	CategoryMemory
	CategoryDisk
	CategoryBattery
	CategoryProcess
	CategoryComponent
)

type entry struct {
	value       any
	fetchedAt   time.Time
	fetched     bool
	unsupported bool
}

// Store caches the most recent probe result per category. A getter returns
// the cached value when it is fresh enough and probes synchronously
// otherwise; a failed probe collapses to "no data" for that tick. A slow
// probe therefore stalls the caller for its duration, which is the accepted
// tradeoff for fast categories.
type Store struct {
	prober  probe.Prober
	logger  *slog.Logger
	now     func() time.Time
	entries map[Category]*entry
}

// NewStore builds a Store around the given prober.
func NewStore(prober probe.Prober, logger *slog.Logger) *Store {
	return &Store{
		prober:  prober,
		logger:  logger,
		now:     time.Now,
		entries: make(map[Category]*entry),
	}
}

func (s *Store) get(cat Category, fetch func() (any, error)) (any, bool) {
	e, ok := s.entries[cat]
	if !ok {
		e = &entry{}
		s.entries[cat] = e
	}

	if e.unsupported {
		return nil, false
	}
	if e.fetched && s.now().Sub(e.fetchedAt) <= RefreshInterval {
		return e.value, e.value != nil
	}

	value, err := fetch()
	e.fetched = true
	e.fetchedAt = s.now()
	if err != nil {
		e.value = nil
		if errors.Is(err, probe.ErrUnsupported) {
			e.unsupported = true
			s.logger.Info("category unsupported", "category", cat)
		} else {
			s.logger.Warn("probe failed", "category", cat, "error", err)
		}
		return nil, false
	}
	e.value = value
	return value, true
}

// System returns the cached or freshly probed host identity.
func (s *Store) System() (*probe.SystemInfo, bool) {
	v, ok := s.get(CategorySystem, func() (any, error) { return s.prober.System() })
	if !ok {
		return nil, false
	}
	info, ok := v.(*probe.SystemInfo)
	return info, ok
}

// CPU returns the cached or freshly probed per-core list.
func (s *Store) CPU() ([]probe.CPUCore, bool) {
	v, ok := s.get(CategoryCPU, func() (any, error) { return s.prober.CPU() })
	if !ok {
		return nil, false
	}
	cores, ok := v.([]probe.CPUCore)
	return cores, ok
}

// Memory returns the cached or freshly probed RAM/swap usage.
func (s *Store) Memory() (*probe.MemoryInfo, bool) {
	v, ok := s.get(CategoryMemory, func() (any, error) { return s.prober.Memory() })
	if !ok {
		return nil, false
	}
	info, ok := v.(*probe.MemoryInfo)
	return info, ok
}

// Disks returns the cached or freshly probed partition list.
func (s *Store) Disks() ([]probe.DiskInfo, bool) {
	v, ok := s.get(CategoryDisk, func() (any, error) { return s.prober.Disks() })
	if !ok {
		return nil, false
	}
	disks, ok := v.([]probe.DiskInfo)
	return disks, ok
}

// Batteries returns the cached or freshly probed battery list.
func (s *Store) Batteries() ([]probe.BatteryInfo, bool) {
	v, ok := s.get(CategoryBattery, func() (any, error) { return s.prober.Batteries() })
	if !ok {
		return nil, false
	}
	batteries, ok := v.([]probe.BatteryInfo)
	return batteries, ok
}

// Processes returns the cached or freshly probed process list.
func (s *Store) Processes() ([]probe.ProcessInfo, bool) {
	v, ok := s.get(CategoryProcess, func() (any, error) { return s.prober.Processes() })
	if !ok {
		return nil, false
	}
	procs, ok := v.([]probe.ProcessInfo)
	return procs, ok
}

// Components returns the cached or freshly probed sensor list.
func (s *Store) Components() ([]probe.ComponentInfo, bool) {
	v, ok := s.get(CategoryComponent, func() (any, error) { return s.prober.Components() })
	if !ok {
		return nil, false
	}
	comps, ok := v.([]probe.ComponentInfo)
	return comps, ok
}
