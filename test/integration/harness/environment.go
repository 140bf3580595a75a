package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated environment with its own TASKTIMERS_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated environment with a temp TASKTIMERS_HOME.
// Desktop notifications are switched off through settings.json.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	env.WriteSettings(map[string]any{"notifications": false})
	return env
}

// Environ returns the process environment with TASKTIMERS_* variables replaced.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TASKTIMERS_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TASKTIMERS_HOME="+e.Home,
		"TASKTIMERS_DEBUG=",
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// WriteSettings replaces settings.json with the given fields.
func (e *TestEnvironment) WriteSettings(fields map[string]any) {
	e.tb.Helper()

	data, err := json.Marshal(fields)
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// DBPath returns the path to the state database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}
