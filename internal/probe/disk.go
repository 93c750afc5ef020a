package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Disks reports every mounted physical partition with its usage.
func (h *HostProber) Disks() ([]DiskInfo, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}

	disks := []DiskInfo{}
	for _, part := range partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			// Unreadable mount points (fuse, containers) are skipped,
			// not fatal.
			continue
		}
		disks = append(disks, DiskInfo{
			Name:       part.Device,
			MountPoint: part.Mountpoint,
			FileSystem: part.Fstype,
			Used:       usage.Used,
			Total:      usage.Total,
		})
	}
	return disks, nil
}
