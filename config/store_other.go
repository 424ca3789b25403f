//go:build !windows

package config

// DefaultStore returns the platform configuration store. Without a registry
// the JSON file store stands in, with the same machine-then-user scoping.
func DefaultStore() Store {
	return &FileStore{}
}
