package dash

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gianzellweger/crossinfo/internal/probe"
	"github.com/gianzellweger/crossinfo/internal/telemetry"
)

// Run wires the telemetry layer to the dashboard and blocks until the user
// quits. It returns an error when the terminal cannot be put into the
// interactive mode the dashboard needs.
func Run(prober probe.Prober, logger *slog.Logger) error {
	store := telemetry.NewStore(prober, logger)
	recorder := telemetry.NewRecorder(telemetry.RefreshInterval)

	watcher := telemetry.NewNetWatcher(prober, logger)
	watcher.Start()
	// The quit key already joins the watcher; this covers error paths and
	// is a no-op the second time.
	defer watcher.Stop()

	model := NewModel(store, recorder, watcher, prober, logger)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}
