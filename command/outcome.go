package command

import (
	"errors"
	"fmt"
)

// State is the visibility the command reports to the host for the current
// selection. There are exactly two states.
type State int

const (
	// StateHidden keeps the entry out of the menu.
	StateHidden State = iota
	// StateEnabled shows the entry ready to invoke.
	StateEnabled
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "HIDDEN"
	case StateEnabled:
		return "ENABLED"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flags describes menu capabilities (separator, submenu and the like). This
// command never sets any.
type Flags uint32

const FlagsDefault Flags = 0

// InvokeResult distinguishes the soft outcomes of Invoke.
type InvokeResult int

const (
	// InvokeNotHandled means the selection was not a drive root. The host may
	// silently ignore it; it is not an error.
	InvokeNotHandled InvokeResult = iota
	// InvokeLaunched means the benchmark tool was started.
	InvokeLaunched
)

// The error taxonomy surfaced to the host. Every failure maps to exactly one
// of these (or to config.ErrNotConfigured); discriminate with errors.Is.
var (
	// ErrInvalidArg reports a required argument that was nil.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrLaunchFailed reports that the OS could not start the benchmark tool.
	ErrLaunchFailed = errors.New("failed to launch benchmark tool")
	// ErrNotImplemented is the permanent answer to sub-command enumeration.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoInterface reports an unsupported capability query.
	ErrNoInterface = errors.New("interface not supported")
	// ErrNoAggregation reports a rejected aggregation request.
	ErrNoAggregation = errors.New("aggregation not supported")
	// ErrClassNotAvailable reports a class-object request for a foreign class id.
	ErrClassNotAvailable = errors.New("class not available")
)
