//go:build windows

package sound

import (
	"os/exec"

	"tasktimers/internal/domain"
)

// playForChoice plays sounds on Windows using PowerShell
func playForChoice(choice domain.SoundChoice) bool {
	var soundCommands []string

	switch choice {
	case domain.SoundChime:
		soundCommands = []string{"[System.Media.SystemSounds]::Asterisk.Play()"}
	case domain.SoundBell:
		soundCommands = []string{"[System.Media.SystemSounds]::Exclamation.Play()"}
	case domain.SoundTick:
		soundCommands = []string{"[System.Media.SystemSounds]::Question.Play()"}
	}
	soundCommands = append(soundCommands, "[System.Media.SystemSounds]::Beep.Play()")

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}
