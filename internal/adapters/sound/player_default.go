//go:build !darwin && !linux && !windows

package sound

import "tasktimers/internal/domain"

// playForChoice has no audio tool to call on unsupported platforms
func playForChoice(choice domain.SoundChoice) bool {
	return false
}
