package probe

import (
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

const powerSupplyDir = "/sys/class/power_supply"

// HostProber implements Prober against the local machine.
type HostProber struct {
	batterySupported bool
}

// New probes the environment once for fixed capabilities and returns a
// ready-to-use HostProber.
func New() *HostProber {
	_, err := os.Stat(powerSupplyDir)
	return &HostProber{
		batterySupported: err == nil,
	}
}

// Kill terminates the process with the given PID.
func (h *HostProber) Kill(pid int32) bool {
	p, err := process.NewProcess(pid)
	if err != nil {
		return false
	}
	return p.Kill() == nil
}
