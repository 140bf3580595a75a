package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktimers/internal/domain"
)

func TestParseDurationInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minutes", input: "25", want: 1500},
		{name: "padded minutes", input: " 5 ", want: 300},
		{name: "go duration", input: "1h30m", want: 5400},
		{name: "seconds", input: "90s", want: 90},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-3", wantErr: true},
		{name: "negative duration", input: "-2m", wantErr: true},
		{name: "sub second", input: "1500ms", want: 1},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDurationInput_RoundTrips(t *testing.T) {
	for _, seconds := range []int{60, 1500, 90, 3725} {
		got, err := ParseDurationInput(FormatDurationInput(seconds))
		require.NoError(t, err)
		assert.Equal(t, seconds, got)
	}
}

func TestNewTaskForm_PrefillsFromTask(t *testing.T) {
	task := domain.NewTask("Stretch", 480)
	var result TaskFormResult

	form := NewTaskForm(&task, &result)

	require.NotNil(t, form)
	assert.Equal(t, "Stretch", result.Name)
	assert.Equal(t, "8", result.DurationInput)
	seconds, err := result.DurationSeconds()
	require.NoError(t, err)
	assert.Equal(t, 480, seconds)
}

func TestValidateTaskName(t *testing.T) {
	assert.ErrorIs(t, validateTaskName("   "), domain.ErrEmptyTaskName)
	assert.NoError(t, validateTaskName("Read"))
}
