package config

import (
	"os"
	"path/filepath"
)

// GetHome returns TASKTIMERS_HOME or the ~/.tasktimers default
func GetHome() string {
	home := os.Getenv("TASKTIMERS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tasktimers"
		}
		return filepath.Join(homeDir, ".tasktimers")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TASKTIMERS_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $TASKTIMERS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetLockPath returns the lock file guarding the database at dbPath
func GetLockPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "tasktimers.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
