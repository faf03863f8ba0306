package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gitIdentity lets the binary commit on machines without a global git config
var gitIdentity = []string{
	"GIT_AUTHOR_NAME=Test User",
	"GIT_AUTHOR_EMAIL=test@example.com",
	"GIT_COMMITTER_NAME=Test User",
	"GIT_COMMITTER_EMAIL=test@example.com",
}

// TestEnvironment provides an isolated test environment with its own GREENER_HOME.
type TestEnvironment struct {
	GreenerHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GREENER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GreenerHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GREENER_* and GIT_* variables and sets:
//   - GREENER_HOME to the temp directory
//   - GREENER_DEBUG to empty string (disables debug logging)
//   - a fixed git author and committer
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+len(gitIdentity)+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GREENER_") || strings.HasPrefix(key, "GIT_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GREENER_HOME="+e.GreenerHome,
		"GREENER_DEBUG=",
	)
	env = append(env, gitIdentity...)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// JournalPath returns the path to the test journal database.
func (e *TestEnvironment) JournalPath() string {
	return filepath.Join(e.GreenerHome, "journal.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GreenerHome, "settings.json")
}

// WriteSettings writes raw JSON to the test settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
