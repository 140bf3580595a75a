//go:build linux

package sound

import (
	"os/exec"

	"tasktimers/internal/domain"
)

type soundCommand struct {
	cmd  string
	args []string
}

// playForChoice plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForChoice(choice domain.SoundChoice) bool {
	var sounds []soundCommand

	switch choice {
	case domain.SoundChime:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case domain.SoundBell:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	case domain.SoundTick:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	default:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/alarm-clock-elapsed.oga"}},
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}
