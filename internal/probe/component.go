package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/sensors"
)

// Components reports thermal sensor readings.
func (h *HostProber) Components() ([]ComponentInfo, error) {
	stats, err := sensors.SensorsTemperatures()
	if err != nil {
		return nil, fmt.Errorf("sensors: %w", err)
	}

	components := []ComponentInfo{}
	for _, st := range stats {
		entry := ComponentInfo{
			Name:        st.SensorKey,
			Temperature: st.Temperature,
		}
		// A zero critical threshold means the sensor does not report one.
		if st.Critical > 0 {
			critical := st.Critical
			entry.Critical = &critical
		}
		components = append(components, entry)
	}
	return components, nil
}
