package command

import (
	"fmt"
	"sync/atomic"

	"github.com/diskbench/shellext/config"
	"github.com/diskbench/shellext/launch"
	"github.com/diskbench/shellext/log"

	"github.com/google/uuid"
)

// ClassFactory produces Command instances for the host, one per
// CreateInstance call. It follows the same atomic reference-count discipline
// as the command itself.
type ClassFactory struct {
	refs atomic.Int32

	resolver *config.Resolver
	launcher launch.Launcher
}

// NewClassFactory creates a factory wired to the platform store and the real
// launcher. The reference count starts at 1.
func NewClassFactory() *ClassFactory {
	return NewClassFactoryWithDeps(config.NewResolver(config.DefaultStore()), launch.MakeLauncher())
}

// NewClassFactoryWithDeps creates a factory that passes the provided
// dependencies to every command it constructs.
func NewClassFactoryWithDeps(resolver *config.Resolver, launcher launch.Launcher) *ClassFactory {
	f := &ClassFactory{resolver: resolver, launcher: launcher}
	f.refs.Store(1)
	return f
}

// AddRef atomically increments the reference count and returns the new value.
func (f *ClassFactory) AddRef() int32 {
	return f.refs.Add(1)
}

// Release atomically decrements the reference count and returns the new
// value. The factory holds no resources, so reaching zero only ends its use.
func (f *ClassFactory) Release() int32 {
	n := f.refs.Add(-1)
	if n == 0 {
		log.Debug().Msg("class factory released")
	}
	return n
}

// QueryInterface returns the factory itself, with an incremented reference
// count, for the factory identity and the generic object identity.
func (f *ClassFactory) QueryInterface(iid uuid.UUID) (any, error) {
	switch iid {
	case IIDUnknown, IIDClassFactory:
		f.AddRef()
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoInterface, iid)
}

// CreateInstance constructs a Command and returns the capability requested by
// iid. Aggregation (a non-nil outer object wrapping the new one) is not
// supported. The factory's construction reference is released before
// returning, so on success the caller holds the only reference.
func (f *ClassFactory) CreateInstance(outer any, iid uuid.UUID) (any, error) {
	if outer != nil {
		return nil, ErrNoAggregation
	}

	c := NewWithDeps(f.resolver, f.launcher)
	v, err := c.QueryInterface(iid)
	c.Release()
	return v, err
}

// LockServer is accepted and ignored; the factory imposes no server-lifetime
// pinning.
func (f *ClassFactory) LockServer(lock bool) {
}

// GetClassObject hands out a factory for the DiskBench command class. Any
// other class id yields ErrClassNotAvailable. This is the in-process
// equivalent of the host's class-object lookup.
func GetClassObject(clsid, iid uuid.UUID) (any, error) {
	if clsid != CLSIDDiskBenchCommand {
		return nil, fmt.Errorf("%w: %s", ErrClassNotAvailable, clsid)
	}

	f := NewClassFactory()
	v, err := f.QueryInterface(iid)
	f.Release()
	return v, err
}
