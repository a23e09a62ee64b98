package tui

import (
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress routes a key press. Quit is handled here in every mode;
// everything else goes to the panel while it has focus, and the effects
// the panel queued are applied before returning.
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.keyMode()
	cmd, ok := m.keys.GetBinding(key, mode)

	if ok && cmd == keymap.CmdQuit {
		m.quitting = true
		m.logger.Debug("quit requested", "mode", string(mode))
		return m, tea.Quit
	}

	if mode == keymap.ModeHome {
		if ok && cmd == keymap.CmdOpenPanel {
			m.open()
			return m, m.panel.SetProps(m.props())
		}
		return m, nil
	}

	_, panelCmd := m.panel.Update(key)
	effects := m.panel.TakeEffects()
	if len(effects) == 0 {
		return m, panelCmd
	}

	// Effects land in this update so the next frame never shows the panel
	// state without the step it belongs to.
	onboard.Apply(&m, effects)
	return m, tea.Batch(panelCmd, m.panel.SetProps(m.props()))
}
