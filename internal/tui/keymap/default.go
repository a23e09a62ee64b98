package keymap

import "github.com/charmbracelet/bubbles/key"

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default onboard key bindings",
		Global: []KeyBinding{
			bind(CmdQuit, "General", "ctrl+c", "quit", "ctrl+c"),
		},
		Modes: map[Mode]*ModeBindings{
			ModeHome:  defaultHomeBindings(),
			ModePanel: defaultPanelBindings(),
			ModeHelp:  defaultHelpBindings(),
		},
	}
}

func bind(cmd Command, category, helpKey, helpDesc string, keys ...string) KeyBinding {
	return KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, helpDesc)),
		Command:  cmd,
		Category: category,
	}
}

func defaultHomeBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHome,
		Bindings: []KeyBinding{
			bind(CmdOpenPanel, "General", "o", "open onboarding", "o"),
			bind(CmdQuit, "General", "q", "quit", "q"),
		},
	}
}

func defaultPanelBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModePanel,
		Bindings: []KeyBinding{
			// Focus
			bind(CmdFocusNext, "Navigation", "↓/j/tab", "next item", "down", "j", "tab"),
			bind(CmdFocusPrev, "Navigation", "↑/k/shift+tab", "previous item", "up", "k", "shift+tab"),
			bind(CmdScrollDown, "Navigation", "pgdn", "scroll down", "pgdown"),
			bind(CmdScrollUp, "Navigation", "pgup", "scroll up", "pgup"),

			// Actions
			bind(CmdActivate, "Actions", "enter", "select", "enter", " "),
			bind(CmdBack, "Actions", "b", "back to list", "b", "backspace"),
			bind(CmdToggleList, "Actions", "t", "show more/fewer", "t"),
			bind(CmdDismiss, "Actions", "esc/x", "close panel", "esc", "x"),

			bind(CmdToggleHelp, "General", "?", "help", "?"),
			bind(CmdQuit, "General", "q", "quit", "q"),
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			bind(CmdScrollDown, "Help", "↓/j", "scroll down", "down", "j"),
			bind(CmdScrollUp, "Help", "↑/k", "scroll up", "up", "k"),
			bind(CmdToggleHelp, "Help", "?/esc", "close help", "?", "esc"),
		},
	}
}
