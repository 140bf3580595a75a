package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyDefinition defines the metadata for a key binding of the live view.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Label    string // Shown in the help bar instead of the raw keys
	Name     string
}

// AllKeyDefinitions is the single source of truth for key names, defaults and help text.
var AllKeyDefinitions = []KeyDefinition{
	{Name: "toggle_pause", Defaults: []string{"p", " "}, Label: "p/space", Help: "pause/resume"},
	{Name: "cancel", Defaults: []string{"x"}, Help: "cancel"},
	{Name: "add_minute", Defaults: []string{"+", "="}, Label: "+", Help: "+1 min"},
	{Name: "subtract_minute", Defaults: []string{"-"}, Help: "-1 min"},
	{Name: "start_last", Defaults: []string{"s"}, Help: "start last task"},
	{Name: "help", Defaults: []string{"?"}, Help: "more keys"},
	{Name: "quit", Defaults: []string{"q", "ctrl+c"}, Label: "q", Help: "quit"},
}

// KeyMap contains the keyboard shortcuts of the live view
type KeyMap struct {
	AddMinute      key.Binding
	Cancel         key.Binding
	Help           key.Binding
	Quit           key.Binding
	StartLast      key.Binding
	SubtractMinute key.Binding
	TogglePause    key.Binding
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		AddMinute:      buildBinding("add_minute"),
		Cancel:         buildBinding("cancel"),
		Help:           buildBinding("help"),
		Quit:           buildBinding("quit"),
		StartLast:      buildBinding("start_last"),
		SubtractMinute: buildBinding("subtract_minute"),
		TogglePause:    buildBinding("toggle_pause"),
	}
}

// ShortHelp returns the bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePause, k.Cancel, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePause, k.Cancel, k.StartLast},
		{k.AddMinute, k.SubtractMinute},
		{k.Help, k.Quit},
	}
}

func buildBinding(name string) key.Binding {
	for _, def := range AllKeyDefinitions {
		if def.Name != name {
			continue
		}
		label := def.Label
		if label == "" {
			label = strings.Join(def.Defaults, "/")
		}
		return key.NewBinding(
			key.WithKeys(def.Defaults...),
			key.WithHelp(label, def.Help),
		)
	}
	return key.NewBinding(key.WithDisabled())
}
