package telemetry

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// mockProber delegates to optional function fields; a nil field yields an
// empty result. Shared by the tests in this package.
type mockProber struct {
	systemFn     func() (*probe.SystemInfo, error)
	cpuFn        func() ([]probe.CPUCore, error)
	memoryFn     func() (*probe.MemoryInfo, error)
	disksFn      func() ([]probe.DiskInfo, error)
	batteriesFn  func() ([]probe.BatteryInfo, error)
	networkFn    func() (*probe.NetworkInfo, error)
	processesFn  func() ([]probe.ProcessInfo, error)
	componentsFn func() ([]probe.ComponentInfo, error)
	killFn       func(pid int32) bool
}

func (m *mockProber) System() (*probe.SystemInfo, error) {
	if m.systemFn != nil {
		return m.systemFn()
	}
	return &probe.SystemInfo{}, nil
}

func (m *mockProber) CPU() ([]probe.CPUCore, error) {
	if m.cpuFn != nil {
		return m.cpuFn()
	}
	return nil, nil
}

func (m *mockProber) Memory() (*probe.MemoryInfo, error) {
	if m.memoryFn != nil {
		return m.memoryFn()
	}
	return &probe.MemoryInfo{}, nil
}

func (m *mockProber) Disks() ([]probe.DiskInfo, error) {
	if m.disksFn != nil {
		return m.disksFn()
	}
	return nil, nil
}

func (m *mockProber) Batteries() ([]probe.BatteryInfo, error) {
	if m.batteriesFn != nil {
		return m.batteriesFn()
	}
	return nil, nil
}

func (m *mockProber) Network() (*probe.NetworkInfo, error) {
	if m.networkFn != nil {
		return m.networkFn()
	}
	return &probe.NetworkInfo{}, nil
}

func (m *mockProber) Processes() ([]probe.ProcessInfo, error) {
	if m.processesFn != nil {
		return m.processesFn()
	}
	return nil, nil
}

func (m *mockProber) Components() ([]probe.ComponentInfo, error) {
	if m.componentsFn != nil {
		return m.componentsFn()
	}
	return nil, nil
}

func (m *mockProber) Kill(pid int32) bool {
	if m.killFn != nil {
		return m.killFn(pid)
	}
	return false
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreDebounce(t *testing.T) {
	calls := 0
	prober := &mockProber{
		cpuFn: func() ([]probe.CPUCore, error) {
			calls++
			return []probe.CPUCore{{Label: "cpu0", Usage: 12.5}}, nil
		},
	}

	store := NewStore(prober, discardLogger())
	now := time.Now()
	store.now = func() time.Time { return now }

	cores, ok := store.CPU()
	if !ok {
		t.Fatal("expected CPU data on first probe")
	}
	if len(cores) != 1 || cores[0].Label != "cpu0" {
		t.Errorf("unexpected cores: %v", cores)
	}

	// Within the interval the cached value is served.
	if _, ok := store.CPU(); !ok {
		t.Error("expected cached CPU data within interval")
	}
	if calls != 1 {
		t.Errorf("expected 1 probe call within interval, got %d", calls)
	}

	// Past the interval a fresh probe runs.
	now = now.Add(RefreshInterval + time.Millisecond)
	if _, ok := store.CPU(); !ok {
		t.Error("expected CPU data after interval")
	}
	if calls != 2 {
		t.Errorf("expected 2 probe calls after interval, got %d", calls)
	}
}

func TestStoreTransientFailure(t *testing.T) {
	calls := 0
	prober := &mockProber{
		memoryFn: func() (*probe.MemoryInfo, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("sysfs read failed")
			}
			return &probe.MemoryInfo{TotalMemory: 8_000_000_000}, nil
		},
	}

	store := NewStore(prober, discardLogger())
	now := time.Now()
	store.now = func() time.Time { return now }

	if _, ok := store.Memory(); ok {
		t.Error("expected no data after failed probe")
	}

	// The failure is cached too: no re-probe within the interval.
	if _, ok := store.Memory(); ok {
		t.Error("expected no data while failure is cached")
	}
	if calls != 1 {
		t.Errorf("expected 1 probe call while failure cached, got %d", calls)
	}

	// Next tick recovers.
	now = now.Add(RefreshInterval + time.Millisecond)
	info, ok := store.Memory()
	if !ok {
		t.Fatal("expected data after recovery")
	}
	if info.TotalMemory != 8_000_000_000 {
		t.Errorf("expected total 8000000000, got %d", info.TotalMemory)
	}
}

func TestStoreUnsupportedLatch(t *testing.T) {
	calls := 0
	prober := &mockProber{
		batteriesFn: func() ([]probe.BatteryInfo, error) {
			calls++
			return nil, probe.ErrUnsupported
		},
	}

	store := NewStore(prober, discardLogger())
	now := time.Now()
	store.now = func() time.Time { return now }

	if _, ok := store.Batteries(); ok {
		t.Error("expected no data for unsupported category")
	}

	// The latch holds even long past the interval: no more probes.
	now = now.Add(time.Hour)
	if _, ok := store.Batteries(); ok {
		t.Error("expected unsupported category to stay empty")
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 probe call, got %d", calls)
	}
}

func TestStoreCategoriesIndependent(t *testing.T) {
	prober := &mockProber{
		disksFn: func() ([]probe.DiskInfo, error) {
			return nil, errors.New("mount table busy")
		},
		processesFn: func() ([]probe.ProcessInfo, error) {
			return []probe.ProcessInfo{{PID: 1, Name: "init"}}, nil
		},
	}

	store := NewStore(prober, discardLogger())

	if _, ok := store.Disks(); ok {
		t.Error("expected disk probe failure")
	}

	procs, ok := store.Processes()
	if !ok {
		t.Fatal("expected process data despite disk failure")
	}
	if len(procs) != 1 || procs[0].Name != "init" {
		t.Errorf("unexpected processes: %v", procs)
	}
}
