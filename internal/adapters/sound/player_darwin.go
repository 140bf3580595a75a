//go:build darwin

package sound

import (
	"os/exec"

	"tasktimers/internal/domain"
)

// playForChoice plays sounds on macOS using afplay
func playForChoice(choice domain.SoundChoice) bool {
	var soundFiles []string

	switch choice {
	case domain.SoundChime:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	case domain.SoundBell:
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Hero.aiff",
		}
	case domain.SoundTick:
		soundFiles = []string{
			"/System/Library/Sounds/Pop.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Submarine.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return true
		}
	}
	return false
}
