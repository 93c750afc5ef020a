package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPU reports one entry per logical core with its current usage.
func (h *HostProber) CPU() ([]CPUCore, error) {
	percentages, err := cpu.Percent(0, true)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}

	infos, err := cpu.Info()
	if err != nil {
		return nil, fmt.Errorf("cpu info: %w", err)
	}

	cores := make([]CPUCore, len(percentages))
	for i := range percentages {
		core := CPUCore{
			Label: fmt.Sprintf("cpu%d", i),
			Usage: percentages[i],
		}
		// On Linux cpu.Info returns one entry per core; on darwin and
		// windows a single entry describes the whole package.
		if i < len(infos) {
			core.Manufacturer = infos[i].VendorID
			core.FrequencyMHz = infos[i].Mhz
		} else if len(infos) > 0 {
			core.Manufacturer = infos[0].VendorID
			core.FrequencyMHz = infos[0].Mhz
		}
		cores[i] = core
	}
	return cores, nil
}
