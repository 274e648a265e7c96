//go:build windows

package cookbook

import (
	"os/exec"
	"strconv"
)

// setProcessGroup is a no-op on Windows; taskkill handles the tree.
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func killProcessGroup(pid int) {
	// Best-effort cleanup; error ignored as Process.Kill() provides fallback
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
