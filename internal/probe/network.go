package probe

import (
	"fmt"
	"net"
	"strings"
	"time"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// connectivityTarget is a well-known public resolver; reaching its TCP DNS
// port is taken as "connected to the internet".
const (
	connectivityTarget  = "1.1.1.1:53"
	connectivityTimeout = 5 * time.Second
)

// Network bundles the interface list, lifetime traffic counters, primary
// addresses and a live connectivity check. The dial can take up to its full
// timeout, which is why this category is only ever probed off the render
// path.
func (h *HostProber) Network() (*NetworkInfo, error) {
	ifaces, err := gnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("interfaces: %w", err)
	}

	counters := map[string]gnet.IOCountersStat{}
	if stats, err := gnet.IOCounters(true); err == nil {
		for _, st := range stats {
			counters[st.Name] = st
		}
	}

	info := &NetworkInfo{Connected: checkConnectivity()}
	for _, iface := range ifaces {
		entry := InterfaceInfo{
			Name:  iface.Name,
			Index: iface.Index,
			MAC:   iface.HardwareAddr,
			MTU:   iface.MTU,
			Flags: iface.Flags,
		}
		for _, addr := range iface.Addrs {
			entry.Addrs = append(entry.Addrs, addr.Addr)
			if ip := parseAddr(addr.Addr); ip != nil && ip.IsGlobalUnicast() {
				if ip.To4() != nil {
					if info.IPv4 == "" {
						info.IPv4 = ip.String()
					}
				} else if info.IPv6 == "" {
					info.IPv6 = ip.String()
				}
			}
		}
		if st, ok := counters[iface.Name]; ok {
			entry.BytesRecv = st.BytesRecv
			entry.BytesSent = st.BytesSent
			entry.PacketsRecv = st.PacketsRecv
			entry.PacketsSent = st.PacketsSent
		}
		info.Interfaces = append(info.Interfaces, entry)
	}
	return info, nil
}

func checkConnectivity() bool {
	conn, err := net.DialTimeout("tcp", connectivityTarget, connectivityTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// parseAddr accepts both plain addresses and CIDR notation, which is what
// the platform reports depending on OS.
func parseAddr(addr string) net.IP {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		addr = addr[:i]
	}
	return net.ParseIP(addr)
}
