package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const ConfigFileName = "config.json"

// fileConfig is the on-disk shape of one file-store scope.
type fileConfig struct {
	// ExePath is the absolute path of the DiskBench executable.
	ExePath string `json:"exe_path"`
}

// FileStore keeps the tool path in one JSON file per scope. It backs the
// resolver on platforms without a registry and the harness's configure
// command during development.
type FileStore struct {
	// MachineDir and UserDir override the scope directories. Empty means the
	// platform default (%ProgramData%\DiskBench or /etc/diskbench for the
	// machine scope, the user config dir for the user scope).
	MachineDir string
	UserDir    string
}

var _ Store = (*FileStore)(nil)

func (s *FileStore) dir(scope Scope) (string, error) {
	switch scope {
	case ScopeMachine:
		if s.MachineDir != "" {
			return s.MachineDir, nil
		}
		return machineConfigDir(), nil
	case ScopeUser:
		if s.UserDir != "" {
			return s.UserDir, nil
		}
		return userConfigDir()
	default:
		return "", fmt.Errorf("unknown configuration scope %v", scope)
	}
}

// ToolPath reads the tool path from the scope's config file.
func (s *FileStore) ToolPath(scope Scope) (string, error) {
	dir, err := s.dir(scope)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg.ExePath, nil
}

// SetToolPath writes the tool path into the scope's config file, creating the
// scope directory if needed. Only the configure command writes; the command
// object itself never does.
func (s *FileStore) SetToolPath(scope Scope, exePath string) error {
	dir, err := s.dir(scope)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(fileConfig{ExePath: exePath}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomicWriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}

func machineConfigDir() string {
	if runtime.GOOS == "windows" {
		if pd := os.Getenv("ProgramData"); pd != "" {
			return filepath.Join(pd, "DiskBench")
		}
		return `C:\ProgramData\DiskBench`
	}
	return "/etc/diskbench"
}

func userConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, "DiskBench"), nil
}
