package dash

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// View builds the frame from current state. It is a pure read: all probing
// happened in the tick handler or on the background watcher.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.screen == screenWelcome {
		return m.viewWelcome()
	}

	bar := m.renderTabBar()
	contentHeight := m.height - lipgloss.Height(bar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	if m.popup != nil {
		return lipgloss.JoinVertical(lipgloss.Left, bar, m.renderPopup(contentHeight))
	}

	var content string
	switch m.tab {
	case tabSystem:
		content = m.viewSystem()
	case tabCPU:
		content = m.viewCPU(contentHeight)
	case tabMemory:
		content = m.viewMemory(contentHeight)
	case tabDisks:
		content = m.viewDisks()
	case tabBatteries:
		content = m.viewBatteries()
	case tabNetwork:
		content = m.viewNetwork(contentHeight)
	case tabProcesses:
		content = m.viewProcesses(contentHeight)
	case tabComponents:
		content = m.viewComponents(contentHeight)
	}

	content = clampHeight(contentStyle.Render(content), contentHeight)
	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

func (m Model) renderTabBar() string {
	rendered := make([]string, 0, int(tabCount)+1)
	for i := tab(0); i < tabCount; i++ {
		if i == m.tab {
			rendered = append(rendered, activeTabStyle.Render(tabNames[i]))
		} else {
			rendered = append(rendered, tabStyle.Render(tabNames[i]))
		}
	}
	rendered = append(rendered, helpStyle.Render(" ←→:tabs ↑↓:scroll q:quit"))
	return tabBarStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (m Model) viewSystem() string {
	if !m.snap.systemOK {
		return m.noData()
	}
	info := m.snap.system
	lines := []string{
		labelStyle.Render("Operating System: ") + orUnknown(info.OS),
		labelStyle.Render("Operating System Version: ") + orUnknown(info.OSVersion),
		labelStyle.Render("Kernel Version: ") + orUnknown(info.KernelVersion),
		labelStyle.Render("Uptime: ") + formatDuration(info.Uptime),
		labelStyle.Render("Users: "),
	}
	for _, user := range info.Users {
		lines = append(lines, "   "+user)
	}
	return strings.Join(scrollLines(lines, m.line), "\n")
}

func (m Model) viewCPU(height int) string {
	if !m.snap.coresOK {
		return m.noData()
	}

	// Group cores by manufacturer; relevant only on multi-socket machines
	// but cheap to always do.
	order := []string{}
	groups := map[string][]probe.CPUCore{}
	for _, core := range m.snap.cores {
		if _, seen := groups[core.Manufacturer]; !seen {
			order = append(order, core.Manufacturer)
		}
		groups[core.Manufacturer] = append(groups[core.Manufacturer], core)
	}

	columns := make([]string, 0, len(order))
	colWidth := m.width / max(len(order), 1)
	for _, manufacturer := range order {
		cores := groups[manufacturer]

		lines := []string{sectionHeaderStyle.Render(fmt.Sprintf("%s  %-8s  %-15s  %s", manufacturer, "Core", "Frequency (GHz)", "Usage"))}
		for i, core := range cores {
			row := fmt.Sprintf("%*s  %-8s  %15.2f  %5.2f%%", lipgloss.Width(manufacturer), "", core.Label, core.FrequencyMHz/1000, core.Usage)
			if i == m.line {
				row = selectedLineStyle.Render(row)
			}
			lines = append(lines, row)
		}

		chartHeight := height - len(lines) - 3
		if chart := m.renderChart(coreKeys(cores), chartHeight, colWidth-12, "CPU usage (%)"); chart != "" {
			lines = append(lines, "", chart)
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) viewMemory(height int) string {
	if !m.snap.memoryOK {
		return m.noData()
	}
	info := m.snap.memory

	title := sectionHeaderStyle.Render(fmt.Sprintf(
		"Memory: %s/%s, SWAP: %s/%s",
		humanize.Bytes(info.UsedMemory), humanize.Bytes(info.TotalMemory),
		humanize.Bytes(info.UsedSwap), humanize.Bytes(info.TotalSwap),
	))
	legend := lipgloss.NewStyle().Foreground(legendPalette[0]).Render("── RAM used") +
		"   " +
		lipgloss.NewStyle().Foreground(legendPalette[1]).Render("── SWAP used")

	chart := m.renderChart([]string{seriesRAM, seriesSwap}, height-4, m.width-12, "used memory/swap (scaled)")
	if chart == "" {
		chart = helpStyle.Render("collecting data...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, legend, "", chart)
}

// renderChart plots the named recorder series. Returns "" when no series
// has any points yet.
func (m Model) renderChart(keys []string, height, width int, caption string) string {
	data := make([][]float64, 0, len(keys))
	elapsed := 0.0
	for _, key := range keys {
		values := m.recorder.Values(key)
		if len(values) == 0 {
			continue
		}
		data = append(data, values)
		pts := m.recorder.Series(key)
		if last := pts[len(pts)-1].Elapsed; last > elapsed {
			elapsed = last
		}
	}
	if len(data) == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}
	if width < 16 {
		width = 16
	}

	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range colors {
		colors[i] = chartPalette[i%len(chartPalette)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("%s (seconds elapsed: 0 / %.0f / %.0f)", caption, elapsed/2, elapsed)),
	)
}

func (m Model) viewDisks() string {
	if !m.snap.disksOK {
		return m.noData()
	}
	if len(m.snap.disks) == 0 {
		return m.noData()
	}
	lines := []string{}
	for _, d := range m.snap.disks {
		lines = append(lines,
			sectionHeaderStyle.Render(d.Name),
			labelStyle.Render("Used Space: ")+humanize.Bytes(d.Used),
			labelStyle.Render("Total Space: ")+humanize.Bytes(d.Total),
			labelStyle.Render("Mount Point: ")+d.MountPoint,
			labelStyle.Render("Filesystem: ")+orUnknown(d.FileSystem),
			"",
		)
	}
	return strings.Join(scrollLines(lines, m.line), "\n")
}

func (m Model) viewBatteries() string {
	if !m.snap.batteriesOK {
		return m.noData()
	}
	if len(m.snap.batteries) == 0 {
		return m.noData()
	}
	lines := []string{}
	for _, b := range m.snap.batteries {
		cycles := "unknown"
		if b.CycleCount >= 0 {
			cycles = fmt.Sprintf("%d", b.CycleCount)
		}
		lines = append(lines,
			sectionHeaderStyle.Render(orUnknown(b.Model)),
			labelStyle.Render("Manufacturer: ")+orUnknown(b.Manufacturer),
			labelStyle.Render("Charge: ")+fmt.Sprintf("%.0f%%", math.Floor(b.Charge*100)),
			labelStyle.Render("Status: ")+orUnknown(b.State),
			labelStyle.Render("Capacity: ")+fmt.Sprintf("%.2f Wh", b.CapacityWh),
			labelStyle.Render("Intended Capacity: ")+fmt.Sprintf("%.2f Wh", b.DesignCapacityWh),
			labelStyle.Render("Health: ")+fmt.Sprintf("%.2f%%", b.Health),
			labelStyle.Render("Voltage: ")+fmt.Sprintf("%.2f V", b.Voltage),
			labelStyle.Render("Technology: ")+orUnknown(b.Technology),
			labelStyle.Render("Cycle Count: ")+cycles,
			"",
		)
	}
	return strings.Join(scrollLines(lines, m.line), "\n")
}

func (m Model) viewNetwork(height int) string {
	if m.net.Unsupported() {
		return m.noData()
	}
	info, published := m.net.Latest()
	if !published {
		return m.spin.View() + " Loading..."
	}

	overview := []string{
		labelStyle.Render("Connected to the internet: ") + fmt.Sprintf("%t", info.Connected),
		labelStyle.Render("IP Address (IPv4): ") + orUnknown(info.IPv4),
		labelStyle.Render("IP Address (IPv6): ") + orUnknown(info.IPv6),
		"",
	}

	if len(info.Interfaces) == 0 {
		return strings.Join(append(overview, "No network/interface information available!"), "\n")
	}

	nameW, macW := len("Name"), len("MAC Address")
	for _, iface := range info.Interfaces {
		nameW = max(nameW, len(iface.Name))
		macW = max(macW, len(orUnknown(iface.MAC)))
	}

	hint := "Display more [i]nformation   "
	header := listHeaderStyle.Render(fmt.Sprintf("%*s%-*s  %5s  %-*s  %s",
		len(hint), "", nameW, "Name", "Index", macW, "MAC Address", "Flags"))

	rows := []string{header}
	for i, iface := range info.Interfaces {
		row := fmt.Sprintf("%-*s  %5d  %-*s  %s",
			nameW, iface.Name, iface.Index, macW, orUnknown(iface.MAC), strings.Join(iface.Flags, "|"))
		if i == m.line {
			row = selectedLineStyle.Render(hint + row)
		} else {
			row = strings.Repeat(" ", len(hint)) + row
		}
		rows = append(rows, row)
	}

	visible := height - len(overview) - 2
	rows = append(rows[:1], window(rows[1:], m.line, visible)...)
	return strings.Join(append(overview, rows...), "\n")
}

func (m Model) viewProcesses(height int) string {
	if !m.snap.procsOK || len(m.snap.procs) == 0 {
		return m.noData()
	}
	procs := m.snap.procs

	cpuLabel := "CPU usage [c]"
	memLabel := "Memory usage [m]"
	swapLabel := "SWAP usage [s]"
	runLabel := "Runtime [r]"
	killHint := "Kill [k]   "

	nameW := len("Name")
	memW, swapW, runW := len(memLabel), len(swapLabel), len(runLabel)
	for _, p := range procs {
		nameW = max(nameW, len(p.Name))
		memW = max(memW, len(humanize.Bytes(p.MemoryUsage)))
		swapW = max(swapW, len(humanize.Bytes(p.SwapUsage)))
		runW = max(runW, len(formatDuration(p.Runtime)))
	}

	header := listHeaderStyle.Render(fmt.Sprintf("%*s%-*s  %s  %-*s  %-*s  %-*s",
		len(killHint), "", nameW, "Name", cpuLabel, memW, memLabel, swapW, swapLabel, runW, runLabel))

	rows := make([]string, 0, len(procs))
	for i, p := range procs {
		row := fmt.Sprintf("%-*s  %*.2f%%  %-*s  %-*s  %-*s",
			nameW, p.Name,
			len(cpuLabel)-1, p.CPUUsage,
			memW, humanize.Bytes(p.MemoryUsage),
			swapW, humanize.Bytes(p.SwapUsage),
			runW, formatDuration(p.Runtime))
		if i == m.line {
			row = selectedLineStyle.Render(killHint + row)
		} else {
			row = strings.Repeat(" ", len(killHint)) + row
		}
		rows = append(rows, row)
	}

	rows = window(rows, m.line, height-2)
	return header + "\n" + strings.Join(rows, "\n")
}

func (m Model) viewComponents(height int) string {
	if !m.snap.compsOK || len(m.snap.comps) == 0 {
		return m.noData()
	}
	comps := m.snap.comps

	tempLabel := "Temperature [t]"
	critLabel := "Critical Temperature [c]"
	nameW := len("Name")
	for _, c := range comps {
		nameW = max(nameW, len(c.Name))
	}

	header := listHeaderStyle.Render(fmt.Sprintf("  %-*s  %s  %s", nameW, "Name", tempLabel, critLabel))
	rows := make([]string, 0, len(comps))
	for i, c := range comps {
		critical := "None"
		if c.Critical != nil {
			critical = fmt.Sprintf("%.2f°C", *c.Critical)
		}
		row := fmt.Sprintf("%-*s  %*.2f°C  %-*s",
			nameW, c.Name, len(tempLabel)-2, c.Temperature, len(critLabel), critical)
		if i == m.line {
			row = selectedLineStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}

	rows = window(rows, m.line, height-2)
	return header + "\n" + strings.Join(rows, "\n")
}

func (m Model) renderPopup(height int) string {
	var title, body, hint string
	switch p := m.popup.(type) {
	case confirmKillPopup:
		title = "Kill process?"
		body = fmt.Sprintf("Do you really want to kill the process %q?", p.name)
		hint = "[y]es        [n]o"
	case moreInfoPopup:
		title = p.title
		body = p.body
		hint = "[x] dismiss"
	case noSelectionPopup:
		title = warnStyle.Render("Nothing selected!")
		body = "You don't have anything selected!"
		hint = "[x] dismiss"
	}

	box := popupStyle.MaxWidth(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Center,
		popupTitleStyle.Render(title),
		"",
		body,
		"",
		helpStyle.Render(hint),
	))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) noData() string {
	return "No information available!"
}

func coreKeys(cores []probe.CPUCore) []string {
	keys := make([]string, len(cores))
	for i, core := range cores {
		keys[i] = core.Key()
	}
	return keys
}

// window slices rows so that the cursor stays visible in a viewport of the
// given height.
func window(rows []string, cursor, height int) []string {
	if height < 1 {
		height = 1
	}
	if len(rows) <= height {
		return rows
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// scrollLines applies a paragraph scroll offset; scrolling past the end
// keeps the last line visible.
func scrollLines(lines []string, offset int) []string {
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset:]
}

// clampHeight truncates rendered content to the available rows.
func clampHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	secs := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
