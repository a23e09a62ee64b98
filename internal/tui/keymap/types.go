// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the host and the onboarding
// panel resolve keys the same way and the help overlay lists them from
// one source.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeHome  Mode = "home"  // Panel hidden, host shell has focus
	ModePanel Mode = "panel" // Onboarding panel has focus
	ModeHelp  Mode = "help"  // Help overlay open over the panel
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Panel commands
const (
	CmdFocusNext  Command = "focus_next"
	CmdFocusPrev  Command = "focus_prev"
	CmdActivate   Command = "activate"
	CmdBack       Command = "back"
	CmdToggleList Command = "toggle_list"
	CmdDismiss    Command = "dismiss"
	CmdScrollUp   Command = "scroll_up"
	CmdScrollDown Command = "scroll_down"
	CmdToggleHelp Command = "toggle_help"
)

// Host commands
const (
	CmdOpenPanel Command = "open_panel"
	CmdQuit      Command = "quit"
)

// KeyBinding ties a bubbles key binding to a command.
type KeyBinding struct {
	// Binding holds the keys and their help text.
	Binding key.Binding

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	return key.Matches(msg, kb.Binding)
}

// String returns the key label shown in help.
func (kb KeyBinding) String() string {
	return kb.Binding.Help().Key
}

// Description returns the help text for the binding.
func (kb KeyBinding) Description() string {
	return kb.Binding.Help().Desc
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Global bindings apply in every mode and are checked first.
	Global []KeyBinding

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	for _, binding := range km.Global {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// Category is a titled group of bindings for help display.
type Category struct {
	Title    string
	Bindings []KeyBinding
}

// Categories groups a mode's bindings by category in first-seen order.
// Global bindings are appended under their own categories.
func (km *Keymap) Categories(mode Mode) []Category {
	var cats []Category
	index := make(map[string]int)

	add := func(b KeyBinding) {
		i, ok := index[b.Category]
		if !ok {
			i = len(cats)
			index[b.Category] = i
			cats = append(cats, Category{Title: b.Category})
		}
		cats[i].Bindings = append(cats[i].Bindings, b)
	}

	for _, b := range km.GetModeBindings(mode) {
		add(b)
	}
	for _, b := range km.Global {
		add(b)
	}
	return cats
}
