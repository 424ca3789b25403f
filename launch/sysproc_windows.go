//go:build windows

package launch

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedProcAttr returns platform-specific process attributes for detaching
// the child process from the host.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
