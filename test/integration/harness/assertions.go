package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command succeeded with exit code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected success (exit 0), got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command failed with non-zero exit code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"Expected stdout to contain %q.\nActual stdout: %s",
		expected, result.Stdout)
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"Expected stderr to contain %q.\nActual stderr: %s",
		expected, result.Stderr)
}

// StatusJSON runs `status --format json` and decodes the result.
func StatusJSON(tb testing.TB, env *TestEnvironment) map[string]any {
	tb.Helper()
	result := MustRun(tb, env, "status", "--format", "json")

	var status map[string]any
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), &status),
		"Expected valid JSON.\nStdout: %s", result.Stdout)
	return status
}
