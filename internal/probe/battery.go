package probe

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Batteries reads battery state from the power-supply sysfs tree. On
// platforms without it the category is permanently unsupported.
func (h *HostProber) Batteries() ([]BatteryInfo, error) {
	if !h.batterySupported {
		return nil, ErrUnsupported
	}

	paths, err := filepath.Glob(filepath.Join(powerSupplyDir, "BAT*"))
	if err != nil {
		return nil, err
	}

	batteries := []BatteryInfo{}
	for _, base := range paths {
		capacity, err := readFloat(filepath.Join(base, "capacity"))
		if err != nil {
			continue
		}

		full, _ := readFloat(filepath.Join(base, "energy_full"))
		design, _ := readFloat(filepath.Join(base, "energy_full_design"))
		voltage, _ := readFloat(filepath.Join(base, "voltage_now"))

		health := 0.0
		if design > 0 {
			health = full / design * 100
		}

		cycles := -1
		if c, err := readFloat(filepath.Join(base, "cycle_count")); err == nil {
			cycles = int(c)
		}

		batteries = append(batteries, BatteryInfo{
			Model:            readString(filepath.Join(base, "model_name")),
			Manufacturer:     readString(filepath.Join(base, "manufacturer")),
			Charge:           capacity / 100,
			State:            readString(filepath.Join(base, "status")),
			Technology:       readString(filepath.Join(base, "technology")),
			CapacityWh:       full / 1e6,    // sysfs reports microwatt-hours
			DesignCapacityWh: design / 1e6,
			Health:           health,
			Voltage:          voltage / 1e6, // microvolts
			CycleCount:       cycles,
		})
	}
	return batteries, nil
}

func readString(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func readFloat(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
}
