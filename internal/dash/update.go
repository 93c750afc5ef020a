package dash

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gianzellweger/crossinfo/internal/telemetry"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(telemetry.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh tick and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spin.Tick)
}

// Update handles exactly one message per call.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.line > 0 {
				m.line--
			}
		case tea.MouseButtonWheelDown:
			m.line++
			m.clampLine()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tickMsg:
		if m.screen == screenDashboard {
			m.sample()
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenWelcome {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m.quit()
		case "enter":
			m.screen = screenDashboard
			// Restart the elapsed clock so reading the tutorial leaves
			// no gap at the start of the charts.
			m.start = time.Now()
			m.sample()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m.quit()

	case "left":
		if m.tab > 0 {
			m.tab--
		}
		m.line = 0

	case "right":
		if m.tab < tabCount-1 {
			m.tab++
		}
		m.line = 0

	case "up":
		if m.line > 0 {
			m.line--
		}

	case "down":
		m.line++
		m.clampLine()

	case "c":
		switch m.tab {
		case tabProcesses:
			m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByCPU, Dir: telemetry.Ascending}
		case tabComponents:
			m.compSort = telemetry.ComponentSort{Field: telemetry.ComponentByCritical, Dir: telemetry.Ascending}
		}
		m.resort()

	case "C":
		switch m.tab {
		case tabProcesses:
			m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByCPU, Dir: telemetry.Descending}
		case tabComponents:
			m.compSort = telemetry.ComponentSort{Field: telemetry.ComponentByCritical, Dir: telemetry.Descending}
		}
		m.resort()

	case "m":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByMemory, Dir: telemetry.Ascending}
		m.resort()
	case "M":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByMemory, Dir: telemetry.Descending}
		m.resort()
	case "s":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessBySwap, Dir: telemetry.Ascending}
		m.resort()
	case "S":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessBySwap, Dir: telemetry.Descending}
		m.resort()
	case "r":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByRuntime, Dir: telemetry.Ascending}
		m.resort()
	case "R":
		m.procSort = telemetry.ProcessSort{Field: telemetry.ProcessByRuntime, Dir: telemetry.Descending}
		m.resort()
	case "t":
		m.compSort = telemetry.ComponentSort{Field: telemetry.ComponentByTemperature, Dir: telemetry.Ascending}
		m.resort()
	case "T":
		m.compSort = telemetry.ComponentSort{Field: telemetry.ComponentByTemperature, Dir: telemetry.Descending}
		m.resort()

	case "k":
		if m.popup == nil && m.tab == tabProcesses {
			if proc, ok := m.selectedProcess(); ok {
				m.popup = confirmKillPopup{pid: proc.PID, name: proc.Name}
			} else {
				m.popup = noSelectionPopup{}
			}
		}

	case "i":
		if m.popup != nil {
			break
		}
		switch m.tab {
		case tabProcesses:
			if proc, ok := m.selectedProcess(); ok {
				m.popup = moreInfoPopup{title: "More information", body: m.processDetail(proc)}
			} else {
				m.popup = noSelectionPopup{}
			}
		case tabNetwork:
			if iface, ok := m.selectedInterface(); ok {
				m.popup = moreInfoPopup{title: "More information", body: interfaceDetail(iface)}
			} else {
				m.popup = noSelectionPopup{}
			}
		}

	case "x":
		m.popup = nil

	case "y":
		if confirm, ok := m.popup.(confirmKillPopup); ok {
			killed := m.prober.Kill(confirm.pid)
			m.logger.Info("kill requested", "pid", confirm.pid, "name", confirm.name, "killed", killed)
			m.popup = nil
		}

	case "n":
		if _, ok := m.popup.(confirmKillPopup); ok {
			m.popup = nil
		}
	}

	return m, nil
}

// quit stops the background network watcher, blocking until its goroutine
// has exited, then terminates the program. No goroutine is left behind.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.net.Stop()
	return m, tea.Quit
}

// sample refreshes the fast categories through the debounced cache, records
// chart points, and re-applies the active sort specs to the fresh data.
func (m *Model) sample() {
	m.snap.system, m.snap.systemOK = m.store.System()
	m.snap.cores, m.snap.coresOK = m.store.CPU()
	m.snap.memory, m.snap.memoryOK = m.store.Memory()
	m.snap.disks, m.snap.disksOK = m.store.Disks()
	m.snap.batteries, m.snap.batteriesOK = m.store.Batteries()
	m.snap.procs, m.snap.procsOK = m.store.Processes()
	m.snap.comps, m.snap.compsOK = m.store.Components()

	elapsed := time.Since(m.start).Seconds()
	if m.snap.coresOK {
		for _, core := range m.snap.cores {
			m.recorder.Record(core.Key(), elapsed, core.Usage)
		}
	}
	if m.snap.memoryOK {
		memInfo := m.snap.memory
		ram, swap := 0.0, 0.0
		if memInfo.TotalMemory > 0 {
			ram = float64(memInfo.UsedMemory) / float64(memInfo.TotalMemory) * m.ramScale
		}
		if memInfo.TotalSwap > 0 {
			swap = float64(memInfo.UsedSwap) / float64(memInfo.TotalSwap) * m.swapScale
		}
		m.recorder.Record(seriesRAM, elapsed, ram)
		m.recorder.Record(seriesSwap, elapsed, swap)
	}

	m.resort()
}

func (m *Model) resort() {
	telemetry.SortProcesses(m.snap.procs, m.procSort)
	telemetry.SortComponents(m.snap.comps, m.compSort)
	m.clampLine()
}
