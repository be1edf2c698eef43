// Package monitor describes the displays a compositor session can be sized to.
package monitor

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrNoMonitor       = errors.New("no monitor available")
	ErrInvalidGeometry = errors.New("invalid monitor geometry")
)

type Monitor struct {
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

func (m Monitor) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "%s is %dx%d", m.Name, m.Width, m.Height)
	}
	return nil
}

func (m Monitor) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", m.Name, m.Width, m.Height, m.X, m.Y)
}

// First returns the monitor a session is sized to. Only the first entry is
// considered; the rest of the list is ignored.
func First(monitors []Monitor) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, ErrNoMonitor
	}
	if err := monitors[0].Validate(); err != nil {
		return Monitor{}, err
	}
	return monitors[0], nil
}

type Provider interface {
	Monitors() ([]Monitor, error)
}

// Static serves a fixed list.
type Static []Monitor

func (s Static) Monitors() ([]Monitor, error) {
	out := make([]Monitor, len(s))
	copy(out, s)
	return out, nil
}

// order puts the primary monitor first, then sorts left to right, top to bottom.
func order(monitors []Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		a, b := monitors[i], monitors[j]
		if a.Primary != b.Primary {
			return a.Primary
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}
