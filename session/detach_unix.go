//go:build !windows

package session

import (
	"os/exec"
	"syscall"
)

// setupDetached moves the compositor into its own process group so it
// outlives the launching process.
func setupDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
