package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LoadFile decodes a config file. A missing file returns (nil, nil) so
// callers fall through to defaults and the environment.
func LoadFile(path string) (*FileConfig, error) {
	if !FileExists(path) {
		return nil, nil
	}

	fc := &FileConfig{}
	if _, err := toml.DecodeFile(path, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return fc, nil
}

// SaveFile writes a config file with user-only permissions, creating
// the config directory as needed.
func SaveFile(fc *FileConfig, path string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the file may carry an access key
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// CreateDefaultFile writes the commented template to the default
// location unless a file is already there.
func CreateDefaultFile() error {
	if err := EnsureDir(ConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := ConfigFilePath()
	if FileExists(path) {
		return nil
	}

	if err := os.WriteFile(path, []byte(GenerateConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
