package probe

import (
	"errors"
	"time"
)

// ErrUnsupported marks a category the platform cannot report at all. It is
// decided once per session: a category never flips between supported and
// unsupported while the process runs.
var ErrUnsupported = errors.New("category not supported on this platform")

// Prober answers one synchronous query per telemetry category. Every method
// returns either a present (possibly empty) value or an error; transient
// errors and ErrUnsupported are both left to the caller to interpret.
type Prober interface {
	System() (*SystemInfo, error)
	CPU() ([]CPUCore, error)
	Memory() (*MemoryInfo, error)
	Disks() ([]DiskInfo, error)
	Batteries() ([]BatteryInfo, error)
	Network() (*NetworkInfo, error)
	Processes() ([]ProcessInfo, error)
	Components() ([]ComponentInfo, error)

	// Kill terminates the process with the given PID. Best effort, no retry.
	Kill(pid int32) bool
}

// SystemInfo identifies the host.
type SystemInfo struct {
	OS            string
	OSVersion     string
	KernelVersion string
	Uptime        time.Duration
	Users         []string
}

// CPUCore is one logical core. Label comes from the platform ("cpu0", ...)
// rather than the slice index, so it stays stable across probes even if the
// reported ordering changes.
type CPUCore struct {
	Manufacturer string
	Label        string
	FrequencyMHz float64
	Usage        float64
}

// Key identifies the core's chart series.
func (c CPUCore) Key() string {
	return c.Manufacturer + "/" + c.Label
}

// MemoryInfo holds RAM and swap totals in bytes.
type MemoryInfo struct {
	TotalMemory uint64
	UsedMemory  uint64
	TotalSwap   uint64
	UsedSwap    uint64
}

// DiskInfo describes one mounted partition.
type DiskInfo struct {
	Name       string
	MountPoint string
	FileSystem string
	Used       uint64
	Total      uint64
}

// BatteryInfo describes one battery. CycleCount is -1 when unknown.
type BatteryInfo struct {
	Model            string
	Manufacturer     string
	Charge           float64 // 0..1
	State            string
	Technology       string
	CapacityWh       float64
	DesignCapacityWh float64
	Health           float64 // percent of design capacity
	Voltage          float64
	CycleCount       int
}

// InterfaceInfo describes one network interface with its lifetime counters.
type InterfaceInfo struct {
	Name        string
	Index       int
	MAC         string
	MTU         int
	Flags       []string
	Addrs       []string
	BytesRecv   uint64
	BytesSent   uint64
	PacketsRecv uint64
	PacketsSent uint64
}

// HasFlag reports whether the interface carries the named flag.
func (i InterfaceInfo) HasFlag(name string) bool {
	for _, f := range i.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// NetworkInfo bundles connectivity state with the interface list.
type NetworkInfo struct {
	Connected  bool
	IPv4       string
	IPv6       string
	Interfaces []InterfaceInfo
}

// ProcessInfo is one row of the process list.
type ProcessInfo struct {
	PID         int32
	ParentPID   int32
	Name        string
	Path        string
	CPUUsage    float64
	MemoryUsage uint64
	SwapUsage   uint64
	Runtime     time.Duration
}

// ComponentInfo is one thermal sensor reading. Critical is nil when the
// sensor does not report a critical threshold.
type ComponentInfo struct {
	Name        string
	Temperature float64
	Critical    *float64
}
