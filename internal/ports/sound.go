package ports

import "tasktimers/internal/domain"

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the completion sound for the given choice
	PlaySound(choice domain.SoundChoice) error
}
