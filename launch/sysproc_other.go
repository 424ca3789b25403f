//go:build !windows

package launch

import "syscall"

// detachedProcAttr returns platform-specific process attributes for detaching
// the child process from the host.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
