// Package splitscreen tracks the window-layout script across its lifetime in
// a compositor session.
package splitscreen

import (
	"sync"

	"partydeck/logger"

	"github.com/pkg/errors"
)

// Backend is a compositor that can host the layout script. *kwin.Scripting
// is the KWin implementation.
type Backend interface {
	LoadAndStart(path string) error
	Unload() error
}

type State string

const (
	StateNone   = State("none")
	StateActive = State("active")
)

var (
	ErrAlreadyActive = errors.New("splitscreen script already active")
	ErrNotActive     = errors.New("splitscreen script not active")
	ErrBusy          = errors.New("splitscreen operation already in flight")
)

// Guard enforces none -> active -> none locally instead of trusting the
// compositor to reject out of order calls. State only moves when the backend
// call succeeds. The lock is never held across a backend call, so State
// answers even while the compositor hangs.
type Guard struct {
	backend Backend
	mutex   sync.Mutex
	state   State
	busy    bool
	// OnChange, when set, is called with the new state after every transition.
	OnChange func(State)
}

func NewGuard(backend Backend) *Guard {
	return &Guard{backend: backend, state: StateNone}
}

func (g *Guard) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.state
}

// Busy reports whether a load or unload is waiting on the backend.
func (g *Guard) Busy() bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.busy
}

// begin claims the guard when the current state is from.
func (g *Guard) begin(from State, wrong error) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if g.busy {
		logger.Warn("splitscreen_busy", string(g.state))
		return ErrBusy
	}
	if g.state != from {
		logger.Warn("splitscreen_rejected", string(g.state))
		return wrong
	}
	g.busy = true
	return nil
}

// finish releases the guard, moving to to when err is nil.
func (g *Guard) finish(to State, err error) error {
	g.mutex.Lock()
	g.busy = false
	if err != nil {
		g.mutex.Unlock()
		return err
	}
	from := g.state
	g.state = to
	g.mutex.Unlock()

	logger.Info("splitscreen_state", map[string]string{"from": string(from), "to": string(to)})
	if g.OnChange != nil {
		g.OnChange(to)
	}
	return nil
}

func (g *Guard) LoadAndStart(path string) error {
	if err := g.begin(StateNone, ErrAlreadyActive); err != nil {
		return err
	}
	return g.finish(StateActive, g.backend.LoadAndStart(path))
}

func (g *Guard) Unload() error {
	if err := g.begin(StateActive, ErrNotActive); err != nil {
		return err
	}
	return g.finish(StateNone, g.backend.Unload())
}
