// Package session starts a nested compositor sized to a monitor and re-runs
// the current program inside it.
package session

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"partydeck/logger"
	"partydeck/monitor"

	"github.com/pkg/errors"
)

var ErrSpawnFailed = errors.New("compositor failed to start")

// EnvMarker is set in the environment of every spawned session.
const EnvMarker = "PARTYDECK_SESSION"

type Launcher struct {
	Compositor string
	ExtraArgs  []string
	// Start runs cmd without waiting on it and returns its pid. Defaults to a
	// detached start.
	Start func(cmd *exec.Cmd) (int, error)
}

// Spawned is the result of a successful Launch. The process belongs to the OS
// from here on; nothing waits on it.
type Spawned struct {
	Pid     int
	Command string
}

func (l Launcher) compositor() string {
	if len(l.Compositor) == 0 {
		return "kwin_wayland"
	}
	return l.Compositor
}

// Command builds the compositor invocation for the first monitor. args is the
// full argument list of the current process, program name included.
func (l Launcher) Command(monitors []monitor.Monitor, args []string) (*exec.Cmd, error) {
	m, err := monitor.First(monitors)
	if err != nil {
		return nil, err
	}
	argv := []string{
		"--xwayland",
		"--width", strconv.Itoa(m.Width),
		"--height", strconv.Itoa(m.Height),
	}
	argv = append(argv, l.ExtraArgs...)
	argv = append(argv, "--exit-with-session", QuoteArgs(FilterArgs(args)))

	cmd := exec.Command(l.compositor(), argv...)
	cmd.Env = append(os.Environ(), EnvMarker+"=1")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Launch spawns the nested session. On success the caller is expected to end
// the current process; Launch itself never exits.
func (l Launcher) Launch(monitors []monitor.Monitor, args []string) (Spawned, error) {
	cmd, err := l.Command(monitors, args)
	if err != nil {
		logger.Error("build_session_command", len(monitors), err)
		return Spawned{}, err
	}
	cmdline := strings.Join(cmd.Args, " ")
	logger.Info("launch_session", cmdline)

	start := l.Start
	if start == nil {
		start = startDetached
	}
	pid, err := start(cmd)
	if err != nil {
		logger.Error("start_compositor", l.compositor(), err)
		return Spawned{}, errors.Wrapf(ErrSpawnFailed, "%s: %v", l.compositor(), err)
	}
	return Spawned{Pid: pid, Command: cmdline}, nil
}

// Inside reports whether the current process already runs in a session
// started by Launch.
func Inside() bool {
	return len(os.Getenv(EnvMarker)) != 0
}

func startDetached(cmd *exec.Cmd) (int, error) {
	setupDetached(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		logger.Warn("release_compositor", fmt.Sprintf("pid %d: %v", pid, err))
	}
	return pid, nil
}
