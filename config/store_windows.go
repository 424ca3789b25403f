//go:build windows

package config

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// registryStore reads the tool path from the Windows registry, the store the
// real installer writes. HKLM backs the machine scope, HKCU the user scope.
type registryStore struct{}

var _ Store = registryStore{}

func (registryStore) ToolPath(scope Scope) (string, error) {
	root := registry.LOCAL_MACHINE
	if scope == ScopeUser {
		root = registry.CURRENT_USER
	}

	key, err := registry.OpenKey(root, KeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("failed to open %v key %s: %w", scope, KeyPath, err)
	}
	defer key.Close()

	path, _, err := key.GetStringValue(ValueName)
	if err != nil {
		return "", fmt.Errorf("failed to read %s value: %w", ValueName, err)
	}
	return path, nil
}

// DefaultStore returns the platform configuration store: the registry.
func DefaultStore() Store {
	return registryStore{}
}
