package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"quickcalc/internal/logger"
)

// Shutdownable is implemented by components that need teardown when
// the window closes or a signal arrives.
type Shutdownable interface {
	Shutdown()
}

const componentTimeout = 5 * time.Second

// Manager runs registered teardowns in reverse registration order,
// each bounded by a timeout.
type Manager struct {
	mu         sync.Mutex
	names      []string
	components []Shutdownable
	log        logger.Logger
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a named component. Later registrations shut down
// first.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = append(m.names, name)
	m.components = append(m.components, component)
}

// Listen triggers Shutdown on SIGINT/SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("shutdown", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown tears down all registered components once.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]
		name := m.names[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(componentTimeout):
			m.log.Warning("shutdown", "component teardown timeout", map[string]interface{}{
				"component": name,
			})
		}
	}

	m.log.Info("shutdown", "teardown complete", map[string]interface{}{
		"components": len(m.components),
	})
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
