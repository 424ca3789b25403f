package command

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/diskbench/shellext/config"
	"github.com/diskbench/shellext/launch"
	"github.com/diskbench/shellext/log"
	"github.com/diskbench/shellext/selection"

	"github.com/google/uuid"
)

// Display identity, fixed from load to unload.
const (
	commandTitle   = "Benchmark Drive Performance"
	commandToolTip = "Run DiskBench on this drive"
)

// Command is one instance of the Explorer command. Instances are short-lived:
// the host creates one per discovery pass, queries it, and releases it. The
// reference count is the only mutable state; no instance shares state with
// another and no query depends on a prior one.
type Command struct {
	refs atomic.Int32

	resolver *config.Resolver
	launcher launch.Launcher

	// selfPath supplies the icon fallback (this extension's own binary).
	selfPath func() (string, error)
	// onDestroy runs exactly once, when the reference count reaches zero.
	onDestroy func()
}

// New creates a command backed by the platform configuration store and the
// real process launcher. The reference count starts at 1.
func New() *Command {
	return NewWithDeps(config.NewResolver(config.DefaultStore()), launch.MakeLauncher())
}

// NewWithDeps creates a command with the provided dependencies, for hosts and
// tests that need to substitute them.
func NewWithDeps(resolver *config.Resolver, launcher launch.Launcher) *Command {
	c := &Command{
		resolver: resolver,
		launcher: launcher,
		selfPath: os.Executable,
	}
	c.refs.Store(1)
	log.Debug().Msg("command constructed")
	return c
}

// AddRef atomically increments the reference count and returns the new value.
func (c *Command) AddRef() int32 {
	return c.refs.Add(1)
}

// Release atomically decrements the reference count and returns the new
// value. Whichever caller observes zero triggers destruction; the object must
// not be used after that.
func (c *Command) Release() int32 {
	n := c.refs.Add(-1)
	if n == 0 {
		log.Debug().Msg("command destroyed")
		if c.onDestroy != nil {
			c.onDestroy()
		}
	}
	return n
}

// QueryInterface returns the command itself, with an incremented reference
// count, for its own identity and for the generic object identity. Any other
// capability yields ErrNoInterface and a nil value.
func (c *Command) QueryInterface(iid uuid.UUID) (any, error) {
	switch iid {
	case IIDUnknown, IIDExplorerCommand:
		c.AddRef()
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoInterface, iid)
}

// Title returns the menu entry text.
func (c *Command) Title() string {
	return commandTitle
}

// ToolTip returns the hover text for the menu entry.
func (c *Command) ToolTip() string {
	return commandToolTip
}

// CanonicalName returns the command's fixed canonical id.
func (c *Command) CanonicalName() uuid.UUID {
	return CLSIDDiskBenchCommand
}

// Icon returns the icon reference for the menu entry: the benchmark tool's
// own binary at icon index 0, falling back to this extension's binary when
// the tool path is not configured. ok is false when neither source is
// available, which means "no icon" rather than an error.
func (c *Command) Icon() (icon string, ok bool) {
	if path, err := c.resolver.ToolPath(); err == nil {
		return path + ",0", true
	}
	if self, err := c.selfPath(); err == nil && self != "" {
		return self + ",0", true
	}
	log.Warn().Msg("icon: no source available")
	return "", false
}

// State reports whether the menu entry is shown for the current selection:
// enabled for exactly one drive root, hidden otherwise. It never fails.
// okToBeSlow is accepted and ignored; resolution is a cheap config read with
// no I/O against the drive itself.
func (c *Command) State(sel selection.Selection, okToBeSlow bool) State {
	if sel == nil {
		return StateHidden
	}
	drive, ok := selection.DriveRoot(sel)
	if !ok {
		return StateHidden
	}
	log.Debug().Str("drive", drive).Msg("state: enabled")
	return StateEnabled
}

// Invoke runs the benchmark tool against the selected drive root. Each step
// has its own outcome: an inapplicable selection is (InvokeNotHandled, nil),
// an unresolvable tool path wraps config.ErrNotConfigured, a start failure
// wraps ErrLaunchFailed. The launch is fire-and-forget; no step is retried.
func (c *Command) Invoke(sel selection.Selection) (InvokeResult, error) {
	if sel == nil {
		return InvokeNotHandled, ErrInvalidArg
	}

	drive, ok := selection.DriveRoot(sel)
	if !ok {
		log.Info().Msg("invoke: selection is not a drive root")
		return InvokeNotHandled, nil
	}

	tool, err := c.resolver.ToolPath()
	if err != nil {
		log.Error().Err(err).Msg("invoke: tool path unresolved")
		return InvokeNotHandled, fmt.Errorf("resolve tool path: %w", err)
	}

	log.Info().Str("cmdline", launch.CommandLine(tool, drive)).Msg("invoke: launching")
	if err := c.launcher.Start(tool, launch.Args(drive)); err != nil {
		log.Error().Err(err).Msg("invoke: launch failed")
		return InvokeNotHandled, fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return InvokeLaunched, nil
}

// Flags reports the default capability set; the command is a plain entry
// with no separator or submenu behavior.
func (c *Command) Flags() Flags {
	return FlagsDefault
}

// SubCommands reports that this command has no submenu. This is the permanent
// contract, not a placeholder.
func (c *Command) SubCommands() ([]*Command, error) {
	return nil, ErrNotImplemented
}
