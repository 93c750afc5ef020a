package dash

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{time.Minute, "00:01:00"},
		{time.Hour + 23*time.Minute + 45*time.Second, "01:23:45"},
		{26 * time.Hour, "26:00:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v): expected %s, got %s", tt.d, tt.want, got)
		}
	}
}

func TestWindowKeepsCursorVisible(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}

	got := window(rows, 0, 3)
	if len(got) != 3 || got[0] != "a" {
		t.Errorf("expected window [a b c], got %v", got)
	}

	got = window(rows, 4, 3)
	if len(got) != 3 || got[2] != "e" {
		t.Errorf("expected window ending at e, got %v", got)
	}

	// A short list fits untouched.
	got = window(rows, 0, 10)
	if len(got) != 5 {
		t.Errorf("expected all 5 rows, got %d", len(got))
	}
}

func TestScrollLines(t *testing.T) {
	lines := []string{"one", "two", "three"}

	got := scrollLines(lines, 1)
	if len(got) != 2 || got[0] != "two" {
		t.Errorf("expected scroll to start at two, got %v", got)
	}

	// Scrolling past the end pins to the last line.
	got = scrollLines(lines, 99)
	if len(got) != 1 || got[0] != "three" {
		t.Errorf("expected last line only, got %v", got)
	}
}

func TestClampHeight(t *testing.T) {
	content := "a\nb\nc\nd"

	got := clampHeight(content, 2)
	if got != "a\nb" {
		t.Errorf("expected two lines, got %q", got)
	}

	if got := clampHeight(content, 10); got != content {
		t.Errorf("expected untouched content, got %q", got)
	}
}

func TestOrUnknown(t *testing.T) {
	if got := orUnknown(""); got != "unknown" {
		t.Errorf("expected unknown, got %s", got)
	}
	if got := orUnknown("eth0"); got != "eth0" {
		t.Errorf("expected eth0, got %s", got)
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t, threeProcs())
	m.width = 0

	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}

func TestViewWelcome(t *testing.T) {
	m := newTestModel(t, threeProcs())

	out := m.View()
	if !strings.Contains(out, "Welcome") {
		t.Error("expected welcome text on the welcome screen")
	}
}

func TestViewProcessesShowsRows(t *testing.T) {
	m := newTestModel(t, threeProcs())
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.tab = tabProcesses

	out := m.View()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected process %s in view", name)
		}
	}
	if !strings.Contains(out, "CPU usage [c]") {
		t.Error("expected sort hint in the column header")
	}
}

func TestViewPopupReplacesContent(t *testing.T) {
	m := newTestModel(t, threeProcs())
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.tab = tabProcesses
	m = press(m, key("k"))

	out := m.View()
	if !strings.Contains(out, "Kill process?") {
		t.Error("expected kill confirmation popup in view")
	}
	if strings.Contains(out, "gamma") {
		t.Error("expected the process list to be hidden behind the popup")
	}
}

func TestViewNoData(t *testing.T) {
	m := newTestModel(t, &mockProber{})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.tab = tabProcesses

	if out := m.View(); !strings.Contains(out, "No information available!") {
		t.Error("expected empty-state message")
	}
}

func TestInterfaceDetail(t *testing.T) {
	iface := probe.InterfaceInfo{
		Name:      "eth0",
		MAC:       "aa:bb:cc:dd:ee:ff",
		Index:     2,
		MTU:       1500,
		Flags:     []string{"up", "broadcast", "multicast"},
		Addrs:     []string{"192.168.1.10"},
		BytesRecv: 1000,
	}

	out := interfaceDetail(iface)
	if !strings.Contains(out, "aa:bb:cc:dd:ee:ff") {
		t.Error("expected MAC address in detail")
	}
	if !strings.Contains(out, "Is up? true") {
		t.Error("expected up flag breakdown")
	}
	if !strings.Contains(out, "Is loopback interface? false") {
		t.Error("expected loopback flag breakdown")
	}
	if !strings.Contains(out, "192.168.1.10") {
		t.Error("expected address list in detail")
	}
}

func TestProcessDetailResolvesParent(t *testing.T) {
	m := newTestModel(t, threeProcs())
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	child := probe.ProcessInfo{PID: 9, ParentPID: 2, Name: "child"}
	out := m.processDetail(child)
	if !strings.Contains(out, "Parent: beta") {
		t.Errorf("expected parent resolved to beta, got:\n%s", out)
	}

	orphan := probe.ProcessInfo{PID: 10, ParentPID: 0, Name: "orphan"}
	if out := m.processDetail(orphan); !strings.Contains(out, "Parent: No parent") {
		t.Error("expected no-parent label for pid 0")
	}

	stranger := probe.ProcessInfo{PID: 11, ParentPID: 999, Name: "stranger"}
	if out := m.processDetail(stranger); !strings.Contains(out, "Parent: unknown") {
		t.Error("expected unknown parent for missing pid")
	}
}
