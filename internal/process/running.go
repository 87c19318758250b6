package process

import (
	"fmt"
	"os"

	ps "github.com/mitchellh/go-ps"
)

// AlreadyRunning reports whether another process named execName (other than
// the current process) is running, so the daemon can refuse to start a
// second instance over the same socket and cache directory.
func AlreadyRunning(execName string) (bool, int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return false, 0, fmt.Errorf("listing processes: %w", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if p.Executable() == execName {
			return true, p.Pid(), nil
		}
	}
	return false, 0, nil
}
