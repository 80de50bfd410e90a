package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	configDirName  = "tank-war"
	resourceFileFN = "resource.json"
	configDirEnv   = "TANKWAR_CONFIG_DIR"
)

// configBaseDir determines the base directory to store config.
// If TANKWAR_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/tank-war.
func configBaseDir() (string, error) {
	if env := os.Getenv(configDirEnv); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ResourcePath returns the absolute path of the resource file in the config dir.
func ResourcePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, resourceFileFN), nil
}

// Resolve returns the path of the resource file to load. An explicit path
// wins and must exist. Otherwise the config dir is used, seeding it with
// the embedded default the first time.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config %s: %w", explicit, err)
		}
		return explicit, nil
	}
	path, err := ResourcePath()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("config %s: %w", path, err)
	}
	if err := writeDefault(path); err != nil {
		return "", fmt.Errorf("seed config %s: %w", path, err)
	}
	return path, nil
}

// writeDefault writes the embedded resource file atomically.
func writeDefault(path string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, defaultResource, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadResolved resolves the resource path and loads it.
func LoadResolved(explicit string) (*GameConfig, string, error) {
	path, err := Resolve(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
