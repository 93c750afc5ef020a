package telemetry

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gianzellweger/crossinfo/internal/probe"
)

// NetWatcher probes the network category on its own goroutine. The probe
// includes a live connectivity check with unbounded latency, so it must
// never run on the render path; the watcher loops as fast as each probe
// completes and publishes into a mutex-guarded slot that readers poll
// without blocking.
type NetWatcher struct {
	prober probe.Prober
	logger *slog.Logger

	mu          sync.Mutex
	latest      *probe.NetworkInfo
	published   bool
	unsupported bool

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewNetWatcher builds a watcher; call Start to launch its goroutine.
func NewNetWatcher(prober probe.Prober, logger *slog.Logger) *NetWatcher {
	return &NetWatcher{
		prober: prober,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the probe loop.
func (w *NetWatcher) Start() {
	go w.loop()
}

func (w *NetWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		info, err := w.prober.Network()
		if err != nil {
			if errors.Is(err, probe.ErrUnsupported) {
				w.mu.Lock()
				w.unsupported = true
				w.mu.Unlock()
				w.logger.Info("network category unsupported")
				// Capability is fixed for the session; park until stop.
				<-w.stop
				return
			}
			// Transient failure: keep whatever was last published.
			w.logger.Warn("network probe failed", "error", err)
			continue
		}

		w.mu.Lock()
		w.latest = info
		w.published = true
		w.mu.Unlock()
	}
}

// Latest returns the most recently published snapshot. The second return is
// false until the first probe completes ("loading").
func (w *NetWatcher) Latest() (*probe.NetworkInfo, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest, w.published
}

// Unsupported reports whether the platform cannot probe the network at all.
func (w *NetWatcher) Unsupported() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unsupported
}

// Stop signals the loop and blocks until it has exited. Cancellation is
// checked between probes; an in-flight probe finishes first. Safe to call
// more than once.
func (w *NetWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}
