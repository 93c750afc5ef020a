package dash

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// processDetail renders the detail popup body for one process. The parent
// name is resolved from the cached process list so no probing happens here.
func (m Model) processDetail(p probe.ProcessInfo) string {
	parent := "No parent"
	if p.ParentPID > 0 {
		parent = "unknown"
		for _, candidate := range m.snap.procs {
			if candidate.PID == p.ParentPID {
				parent = candidate.Name
				break
			}
		}
	}

	return strings.Join([]string{
		"Name: " + p.Name,
		"Path: " + orUnknown(p.Path),
		"Memory Usage: " + humanize.Bytes(p.MemoryUsage),
		"SWAP Usage: " + humanize.Bytes(p.SwapUsage),
		fmt.Sprintf("CPU Usage: %.2f%%", p.CPUUsage),
		"Runtime: " + formatDuration(p.Runtime),
		fmt.Sprintf("PID: %d", p.PID),
		"Parent: " + parent,
	}, "\n")
}

// interfaceDetail renders the detail popup body for one network interface.
func interfaceDetail(iface probe.InterfaceInfo) string {
	lines := []string{
		"Name: " + iface.Name,
		"MAC-Address: " + orUnknown(iface.MAC),
		fmt.Sprintf("Index: %d", iface.Index),
		fmt.Sprintf("MTU: %d", iface.MTU),
		"IP-addresses:",
	}
	if len(iface.Addrs) == 0 {
		lines = append(lines, "   unknown")
	}
	for _, addr := range iface.Addrs {
		lines = append(lines, "   "+addr)
	}
	lines = append(lines,
		"Flags: "+orUnknown(strings.Join(iface.Flags, "|")),
		fmt.Sprintf("   Is up? %t", iface.HasFlag("up")),
		fmt.Sprintf("   Is broadcast? %t", iface.HasFlag("broadcast")),
		fmt.Sprintf("   Is loopback interface? %t", iface.HasFlag("loopback")),
		fmt.Sprintf("   Is point-to-point interface? %t", iface.HasFlag("pointtopoint")),
		fmt.Sprintf("   Is multicast interface? %t", iface.HasFlag("multicast")),
		"Received: "+humanize.Bytes(iface.BytesRecv),
		"Transmitted: "+humanize.Bytes(iface.BytesSent),
		fmt.Sprintf("Packets received: %d", iface.PacketsRecv),
		fmt.Sprintf("Packets transmitted: %d", iface.PacketsSent),
	)
	return strings.Join(lines, "\n")
}
