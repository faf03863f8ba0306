package paths

import (
	"os"
	"path/filepath"
)

// GetGreenerHome returns GREENER_HOME or ~/.greener default
func GetGreenerHome() string {
	greenerHome := os.Getenv("GREENER_HOME")
	if greenerHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".greener"
		}
		return filepath.Join(homeDir, ".greener")
	}
	return ExpandPath(greenerHome)
}

// GetJournalPath returns $GREENER_HOME/journal.db
func GetJournalPath() string {
	return filepath.Join(GetGreenerHome(), "journal.db")
}

// GetSettingsPath returns $GREENER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetGreenerHome(), "settings.json")
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

