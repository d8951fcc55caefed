// Package shutdown coordinates orderly teardown: closers registered at
// startup run in reverse order exactly once, whether the trigger is the
// window close button or a terminal signal.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"biorhythm-studio/internal/logger"
)

const closerTimeout = 5 * time.Second

type Manager struct {
	mu      sync.Mutex
	closers []func()
	log     *logger.Manager
	done    chan struct{}
}

func NewManager(log *logger.Manager) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

// Register adds a closer. Closers run in reverse registration order, so
// register foundational resources (the log file) first.
func (m *Manager) Register(closer func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closers = append(m.closers, closer)
}

// Listen triggers Shutdown on SIGINT or SIGTERM. Useful when the app is
// launched from a terminal and closed with Ctrl-C instead of the window
// button.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		m.log.Info("shutdown", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown runs every registered closer once, newest first. Subsequent
// calls are no-ops, so the window close handler and the signal handler
// can both call it safely.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("shutdown", "closing", map[string]interface{}{
		"closers": len(m.closers),
	})

	for i := len(m.closers) - 1; i >= 0; i-- {
		closer := m.closers[i]
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			closer()
		}()
		select {
		case <-finished:
		case <-time.After(closerTimeout):
			m.log.Warn("shutdown", "closer timed out", map[string]interface{}{
				"index": i,
			})
		}
	}
}

// Done is closed once shutdown has started.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
