package config

import (
	"errors"
	"fmt"

	"github.com/diskbench/shellext/log"
)

// Key layout shared by every store implementation. The installer writes these;
// this package only reads them.
const (
	KeyPath   = `SOFTWARE\DiskBench\ShellExtension`
	ValueName = "ExePath"
)

// ErrNotConfigured reports that no scope holds a tool path. This is a normal
// state on machines where the installer has not run, not a corruption.
var ErrNotConfigured = errors.New("diskbench tool path not configured")

// Scope selects which configuration scope a read targets.
type Scope int

const (
	ScopeMachine Scope = iota
	ScopeUser
)

func (s Scope) String() string {
	switch s {
	case ScopeMachine:
		return "machine"
	case ScopeUser:
		return "user"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Store reads the tool path from one backing configuration store.
type Store interface {
	// ToolPath returns the tool path configured in the given scope, or an
	// error when the scope has none.
	ToolPath(scope Scope) (string, error)
}

// Resolver resolves the external tool path, machine scope first, user scope
// second. Every call reads the store fresh.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ToolPath returns the configured absolute path of the DiskBench executable.
// The path is returned as stored; whether the file exists is only discovered
// by the launch that uses it.
func (r *Resolver) ToolPath() (string, error) {
	for _, scope := range []Scope{ScopeMachine, ScopeUser} {
		path, err := r.store.ToolPath(scope)
		if err != nil {
			log.Debug().Stringer("scope", scope).Err(err).Msg("tool path not readable in scope")
			continue
		}
		if path == "" {
			log.Debug().Stringer("scope", scope).Msg("tool path empty in scope")
			continue
		}
		log.Debug().Stringer("scope", scope).Str("path", path).Msg("tool path resolved")
		return path, nil
	}
	return "", ErrNotConfigured
}
