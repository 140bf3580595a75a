package haptics

import (
	"fmt"
	"io"
	"os"

	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// Terminal stands in for a haptic engine on a terminal: success rings the
// bell and impacts are only logged
type Terminal struct {
	out io.Writer
}

var _ ports.Haptics = (*Terminal)(nil)

// NewTerminal creates terminal feedback writing to stdout
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout}
}

func (t *Terminal) Impact() {
	logging.Logger.Debug("Haptic impact")
}

func (t *Terminal) Success() {
	logging.Logger.Debug("Haptic success")
	if _, err := fmt.Fprint(t.out, "\a"); err != nil {
		logging.Logger.Warn("Failed to ring terminal bell", "error", err)
	}
}
