package integration_test

import (
	"path/filepath"
	"testing"

	"tasktimers/test/integration/harness"
)

func TestTasksList(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "first run seeds the default catalog",
			args: []string{"tasks", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Reading Time")
				harness.AssertStdoutContains(t, result, "Study Session")
				harness.AssertStdoutContains(t, result, "30:00")
			},
		},
		{
			name: "added task is listed last",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.MustRun(t, env, "tasks", "add", "Deep work", "1h30m")
			},
			args: []string{"tasks", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "6  Deep work")
				harness.AssertStdoutContains(t, result, "01:30:00")
			},
		},
		{
			name: "ids are shown on request",
			args: []string{"tasks", "list", "--ids"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "ID")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestTasksEditDeleteMove(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.MustRun(t, env, "tasks", "edit", "Meditation", "--name", "Breathing", "--duration", "12")
	harness.MustRun(t, env, "tasks", "del", "1")
	result := harness.MustRun(t, env, "tasks", "move", "4", "--to", "1")

	harness.AssertStdoutContains(t, result, "1  Study Session")
	harness.AssertStdoutContains(t, result, "2  Breathing")
	harness.AssertStdoutContains(t, result, "12:00")
}

func TestTasksInvalidInput(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "tasks", "del", "42")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "position out of range")

	result = harness.RunCommand(t, env, "tasks", "add", "Nap", "soon")
	harness.AssertFailure(t, result)
}

func TestTasksExportImport(t *testing.T) {
	source := harness.NewTestEnvironment(t)
	harness.MustRun(t, source, "tasks", "add", "Inbox zero", "15")
	exported := filepath.Join(t.TempDir(), "tasks.yaml")
	harness.MustRun(t, source, "tasks", "export", "--output", exported)

	target := harness.NewTestEnvironment(t)
	result := harness.MustRun(t, target, "tasks", "import", exported)
	harness.AssertStdoutContains(t, result, "Imported 6 new and 0 updated")

	result = harness.MustRun(t, target, "tasks", "import", exported)
	harness.AssertStdoutContains(t, result, "Imported 0 new and 6 updated")

	result = harness.MustRun(t, target, "tasks", "list")
	harness.AssertStdoutContains(t, result, "Inbox zero")
}
