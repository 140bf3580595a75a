// Package harness provides utilities for integration testing the tasktimers CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TASKTIMERS_HOME: Isolated per test (temp directory)
//   - TASKTIMERS_DEBUG: Disabled to reduce noise
//   - TASKTIMERS_DB_PATH: Cleared so the database lives under TASKTIMERS_HOME
package harness
