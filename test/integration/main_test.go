// Package integration_test provides end-to-end tests for tasktimers CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated TASKTIMERS_HOME so state never leaks between tests.
package integration_test

import (
	"log"
	"os"
	"testing"

	"tasktimers/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()
	os.Exit(code)
}
