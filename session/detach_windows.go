//go:build windows

package session

import "os/exec"

func setupDetached(cmd *exec.Cmd) {}
