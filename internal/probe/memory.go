package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// Memory reports RAM and swap usage in bytes.
func (h *HostProber) Memory() (*MemoryInfo, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}

	s, err := mem.SwapMemory()
	if err != nil {
		return nil, fmt.Errorf("swap memory: %w", err)
	}

	return &MemoryInfo{
		TotalMemory: v.Total,
		UsedMemory:  v.Used,
		TotalSwap:   s.Total,
		UsedSwap:    s.Used,
	}, nil
}
