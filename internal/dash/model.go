package dash

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/gianzellweger/crossinfo/internal/probe"
	"github.com/gianzellweger/crossinfo/internal/telemetry"
)

// screen is the top-level state: the welcome screen transitions to the
// dashboard exactly once and never back.
type screen int

const (
	screenWelcome screen = iota
	screenDashboard
)

// tab enumerates the dashboard tabs in display order.
type tab int

const (
	tabSystem tab = iota
	tabCPU
	tabMemory
	tabDisks
	tabBatteries
	tabNetwork
	tabProcesses
	tabComponents
	tabCount
)

var tabNames = [tabCount]string{
	"System", "CPU", "Memory", "Disks", "Batteries",
	"Network", "Processes", "Components",
}

// popup is a tagged union; at most one variant is active at a time and the
// zero value (nil) means no popup.
type popup interface{ isPopup() }

// confirmKillPopup asks before killing the selected process.
type confirmKillPopup struct {
	pid  int32
	name string
}

// moreInfoPopup shows pre-rendered detail text.
type moreInfoPopup struct {
	title string
	body  string
}

// noSelectionPopup warns that a selection-dependent action had no selection.
type noSelectionPopup struct{}

func (confirmKillPopup) isPopup() {}
func (moreInfoPopup) isPopup()    {}
func (noSelectionPopup) isPopup() {}

// Chart series keys for the memory tab. CPU series are keyed per core.
const (
	seriesRAM  = "ram"
	seriesSwap = "swap"
)

// snapshot holds this tick's category values for pure-read rendering. It is
// filled by the tick handler, never by View.
type snapshot struct {
	system      *probe.SystemInfo
	systemOK    bool
	cores       []probe.CPUCore
	coresOK     bool
	memory      *probe.MemoryInfo
	memoryOK    bool
	disks       []probe.DiskInfo
	disksOK     bool
	batteries   []probe.BatteryInfo
	batteriesOK bool
	procs       []probe.ProcessInfo
	procsOK     bool
	comps       []probe.ComponentInfo
	compsOK     bool
}

// Model is the dashboard state machine.
type Model struct {
	store    *telemetry.Store
	recorder *telemetry.Recorder
	net      *telemetry.NetWatcher
	prober   probe.Prober
	logger   *slog.Logger

	screen   screen
	tab      tab
	line     int
	procSort telemetry.ProcessSort
	compSort telemetry.ComponentSort
	popup    popup

	snap  snapshot
	start time.Time

	// Y-axis scales for the memory chart, derived once at startup and
	// deliberately never recomputed even if total capacity changes.
	ramScale  float64
	swapScale float64

	width  int
	height int
	spin   spinner.Model
}

// NewModel builds the initial model. The memory probe runs once here to
// derive the chart unit scales.
func NewModel(store *telemetry.Store, recorder *telemetry.Recorder, net *telemetry.NetWatcher, prober probe.Prober, logger *slog.Logger) Model {
	m := Model{
		store:    store,
		recorder: recorder,
		net:      net,
		prober:   prober,
		logger:   logger,
		screen:   screenWelcome,
		procSort: telemetry.ProcessSort{Field: telemetry.ProcessByCPU, Dir: telemetry.Descending},
		compSort: telemetry.ComponentSort{Field: telemetry.ComponentByTemperature, Dir: telemetry.Descending},
		start:    time.Now(),
	}

	if memInfo, ok := store.Memory(); ok {
		m.ramScale = telemetry.UnitScale(memInfo.TotalMemory)
		m.swapScale = telemetry.UnitScale(memInfo.TotalSwap)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	m.spin = sp

	return m
}

// selectedProcess returns the process under the cursor, if any.
func (m Model) selectedProcess() (probe.ProcessInfo, bool) {
	if !m.snap.procsOK || m.line >= len(m.snap.procs) {
		return probe.ProcessInfo{}, false
	}
	return m.snap.procs[m.line], true
}

// selectedInterface returns the network interface under the cursor, if any.
func (m Model) selectedInterface() (probe.InterfaceInfo, bool) {
	info, published := m.net.Latest()
	if !published || info == nil || m.line >= len(info.Interfaces) {
		return probe.InterfaceInfo{}, false
	}
	return info.Interfaces[m.line], true
}

// listLimit reports the selectable collection length for the active tab.
// Paragraph tabs scroll freely and report no limit.
func (m Model) listLimit() (int, bool) {
	switch m.tab {
	case tabNetwork:
		if info, published := m.net.Latest(); published && info != nil {
			return len(info.Interfaces), true
		}
		return 0, true
	case tabProcesses:
		return len(m.snap.procs), true
	case tabComponents:
		return len(m.snap.comps), true
	default:
		return 0, false
	}
}

// clampLine keeps the cursor inside the current collection.
func (m *Model) clampLine() {
	limit, bounded := m.listLimit()
	if !bounded {
		return
	}
	if limit == 0 {
		m.line = 0
		return
	}
	if m.line > limit-1 {
		m.line = limit - 1
	}
}
