package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"greener/internal/paths"
)

// Push modes accepted by --push and the "push" setting
const (
	PushAsk = "ask"
	PushNo  = "no"
	PushYes = "yes"
)

// Settings represents the structure of ~/.greener/settings.json
type Settings struct {
	CommitCount   *int   `json:"commit_count,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`
	Debug         *bool  `json:"debug,omitempty"`
	Journal       *bool  `json:"journal,omitempty"`
	MaxLogFiles   *int   `json:"max_log_files,omitempty"`
	Push          string `json:"push,omitempty"`
	SectionCount  *int   `json:"section_count,omitempty"`
}

// Validate rejects values no run could use
func (s *Settings) Validate() error {
	if s.CommitCount != nil && *s.CommitCount < 1 {
		return fmt.Errorf("commit_count must be at least 1, got %d", *s.CommitCount)
	}
	if s.SectionCount != nil && *s.SectionCount < 1 {
		return fmt.Errorf("section_count must be at least 1, got %d", *s.SectionCount)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	if s.Push != "" && !IsValidPushMode(s.Push) {
		return fmt.Errorf("push must be one of ask, yes, no, got %q", s.Push)
	}
	return nil
}

// IsValidPushMode reports whether mode is ask, yes or no
func IsValidPushMode(mode string) bool {
	switch strings.ToLower(mode) {
	case PushAsk, PushNo, PushYes:
		return true
	}
	return false
}

// LoadSettings loads settings from $GREENER_HOME/settings.json (or ~/.greener/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	settings.Push = strings.ToLower(settings.Push)

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $GREENER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
