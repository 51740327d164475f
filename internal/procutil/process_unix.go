//go:build !windows

package procutil

import (
	"os"
	"syscall"
)

// IsProcessAlive reports whether a process with the given pid exists.
// Descriptor files advertise the agent's pid; a dead pid marks them stale.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
