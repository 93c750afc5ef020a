package probe

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Processes reports every process the platform lets us inspect. Rows with
// unreadable names (kernel threads, permission walls) are dropped rather
// than shown half-empty.
func (h *HostProber) Processes() ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("process list: %w", err)
	}

	now := time.Now()
	out := []ProcessInfo{}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}

		entry := ProcessInfo{PID: p.Pid, Name: name}
		entry.Path, _ = p.Exe()
		entry.CPUUsage, _ = p.CPUPercent()
		entry.ParentPID, _ = p.Ppid()
		if memInfo, err := p.MemoryInfo(); err == nil && memInfo != nil {
			entry.MemoryUsage = memInfo.RSS
			entry.SwapUsage = memInfo.Swap
		}
		if created, err := p.CreateTime(); err == nil && created > 0 {
			entry.Runtime = now.Sub(time.UnixMilli(created))
		}
		out = append(out, entry)
	}
	return out, nil
}
