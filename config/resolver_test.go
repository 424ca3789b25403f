package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore serves tool paths from a map, one entry per scope.
type mapStore struct {
	paths map[Scope]string
}

var _ Store = (*mapStore)(nil)

func (s *mapStore) ToolPath(scope Scope) (string, error) {
	path, ok := s.paths[scope]
	if !ok {
		return "", fmt.Errorf("scope %v not present", scope)
	}
	return path, nil
}

func TestResolverToolPath(t *testing.T) {
	t.Run("prefers the machine scope", func(t *testing.T) {
		r := NewResolver(&mapStore{paths: map[Scope]string{
			ScopeMachine: `C:\Machine\DiskBench.exe`,
			ScopeUser:    `C:\User\DiskBench.exe`,
		}})

		path, err := r.ToolPath()
		require.NoError(t, err)
		assert.Equal(t, `C:\Machine\DiskBench.exe`, path)
	})

	t.Run("falls back to the user scope", func(t *testing.T) {
		r := NewResolver(&mapStore{paths: map[Scope]string{
			ScopeUser: `C:\User\DiskBench.exe`,
		}})

		path, err := r.ToolPath()
		require.NoError(t, err)
		assert.Equal(t, `C:\User\DiskBench.exe`, path)
	})

	t.Run("reports not configured when both scopes are absent", func(t *testing.T) {
		r := NewResolver(&mapStore{})

		_, err := r.ToolPath()
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("treats an empty stored path as absent", func(t *testing.T) {
		r := NewResolver(&mapStore{paths: map[Scope]string{
			ScopeMachine: "",
			ScopeUser:    `C:\User\DiskBench.exe`,
		}})

		path, err := r.ToolPath()
		require.NoError(t, err)
		assert.Equal(t, `C:\User\DiskBench.exe`, path)
	})

	t.Run("reads fresh on every call", func(t *testing.T) {
		// A repair install may rewrite the store between host queries.
		store := &mapStore{}
		r := NewResolver(store)

		_, err := r.ToolPath()
		assert.ErrorIs(t, err, ErrNotConfigured)

		store.paths = map[Scope]string{ScopeMachine: `C:\Machine\DiskBench.exe`}
		path, err := r.ToolPath()
		require.NoError(t, err)
		assert.Equal(t, `C:\Machine\DiskBench.exe`, path)
	})
}

func TestFileStore(t *testing.T) {
	newStore := func(t *testing.T) *FileStore {
		return &FileStore{
			MachineDir: filepath.Join(t.TempDir(), "machine"),
			UserDir:    filepath.Join(t.TempDir(), "user"),
		}
	}

	t.Run("round trips the tool path per scope", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.SetToolPath(ScopeUser, `C:\Tools\DiskBench.exe`))

		path, err := store.ToolPath(ScopeUser)
		require.NoError(t, err)
		assert.Equal(t, `C:\Tools\DiskBench.exe`, path)

		_, err = store.ToolPath(ScopeMachine)
		assert.Error(t, err)
	})

	t.Run("missing file reads fail", func(t *testing.T) {
		store := newStore(t)

		_, err := store.ToolPath(ScopeMachine)
		assert.Error(t, err)
	})

	t.Run("malformed file reads fail", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, os.MkdirAll(store.UserDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(store.UserDir, ConfigFileName), []byte("{"), 0644))

		_, err := store.ToolPath(ScopeUser)
		assert.Error(t, err)
	})

	t.Run("resolver falls through the file scopes", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.SetToolPath(ScopeUser, `/opt/diskbench/diskbench`))

		path, err := NewResolver(store).ToolPath()
		require.NoError(t, err)
		assert.Equal(t, `/opt/diskbench/diskbench`, path)
	})
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "machine", ScopeMachine.String())
	assert.Equal(t, "user", ScopeUser.String())
}
