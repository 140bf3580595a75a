package sound

import (
	"fmt"
	"io"
	"os"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// Player implements ports.SoundPlayer with the platform's audio tools
type Player struct {
	bell io.Writer
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player that rings the terminal bell as a fallback
func NewPlayer() *Player {
	return &Player{bell: os.Stdout}
}

// PlaySound plays the completion sound for choice.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySound(choice domain.SoundChoice) error {
	if choice == domain.SoundSilent {
		return nil
	}
	logging.Logger.Debug("Playing sound", "choice", choice)
	if playForChoice(choice) {
		return nil
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	if _, err := fmt.Fprint(p.bell, "\a"); err != nil {
		return fmt.Errorf("failed to ring terminal bell: %w", err)
	}
	return nil
}
