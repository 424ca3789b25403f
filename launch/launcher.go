package launch

import (
	"fmt"
	"os/exec"
)

// QuickFlag is the only flag ever passed to the benchmark tool. The full
// invocation convention is: <tool> --quick <drive root>.
const QuickFlag = "--quick"

// Launcher starts an external executable as an independent process. Start
// returns once the process is running (or failed to start); the child is
// never supervised or waited on.
type Launcher interface {
	Start(exe string, args []string) error
}

// MakeLauncher returns the os/exec-backed launcher.
func MakeLauncher() Launcher {
	return execLauncher{}
}

type execLauncher struct{}

func (execLauncher) Start(exe string, args []string) error {
	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = detachedProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", exe, err)
	}

	// Fire-and-forget: drop the handle, never Wait.
	return cmd.Process.Release()
}

// Args builds the argument vector for a benchmark run of the given drive root.
func Args(drive string) []string {
	return []string{QuickFlag, drive}
}

// CommandLine renders the invocation the way it appears on the wire, with
// both the tool path and the drive root quoted. Used for logging and checked
// exactly in tests.
func CommandLine(exe, drive string) string {
	return fmt.Sprintf(`"%s" %s "%s"`, exe, QuickFlag, drive)
}
