package probe

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// System reports host identity and logged-in users.
func (h *HostProber) System() (*SystemInfo, error) {
	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}

	users := []string{}
	// Some platforms cannot enumerate users; the rest of the bundle is
	// still worth showing.
	if stats, err := host.Users(); err == nil {
		for _, u := range stats {
			label := u.User
			if u.Terminal != "" {
				label += " (" + u.Terminal + ")"
			}
			users = append(users, label)
		}
	}

	return &SystemInfo{
		OS:            info.Platform,
		OSVersion:     info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		Uptime:        time.Duration(info.Uptime) * time.Second,
		Users:         users,
	}, nil
}
