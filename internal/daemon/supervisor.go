package daemon

import (
	"fmt"

	"github.com/kestrelwm/rpaperd/internal/process"
)

// execName is the process name go-ps reports for this binary, used to
// refuse starting a second daemon instance.
const execName = "rpaperd"

// EnsureSingleInstance refuses to continue if another rpaperd process is
// already running, matching the source's single-instance guard.
func EnsureSingleInstance() error {
	running, pid, err := process.AlreadyRunning(execName)
	if err != nil {
		return nil
	}
	if running {
		return fmt.Errorf("daemon: another instance is already running (pid %d)", pid)
	}
	return nil
}
