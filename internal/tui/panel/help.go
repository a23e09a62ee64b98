package panel

import (
	"fmt"
	"strings"
)

// HelpPanel renders the help overlay with keybindings and scrolling support.
type HelpPanel struct {
	title  string
	height int
}

// NewHelpPanel creates a new HelpPanel with the given title.
func NewHelpPanel(title string) *HelpPanel {
	if title == "" {
		title = "Help"
	}
	return &HelpPanel{title: title}
}

// MaxScroll returns the largest useful scroll offset for state.
func (p *HelpPanel) MaxScroll(state *RenderState) int {
	lines := p.lines(state)
	return max(len(lines)-p.visibleLines(state), 0)
}

func (p *HelpPanel) visibleLines(state *RenderState) int {
	// Leave room for the scroll indicator
	return max(state.Height-2, 3)
}

func (p *HelpPanel) lines(state *RenderState) []string {
	var lines []string

	title := p.title
	subtitle := "Use ↑/↓ to scroll, ? or esc to close."
	if state.Theme != nil {
		title = state.Theme.Primary().Bold(true).Render(title)
		subtitle = state.Theme.Muted().Render(subtitle)
	}
	lines = append(lines, title, subtitle, "")

	for _, section := range state.HelpSections {
		sectionTitle := "▸ " + section.Title
		if state.Theme != nil {
			sectionTitle = state.Theme.Primary().Render(sectionTitle)
		}
		lines = append(lines, sectionTitle)

		for _, item := range section.Items {
			keyStr := item.Key
			descStr := item.Description
			if state.Theme != nil {
				keyStr = state.Theme.Secondary().Render(keyStr)
				descStr = state.Theme.Muted().Render(descStr)
			}
			lines = append(lines, fmt.Sprintf("    %s  %s", keyStr, descStr))
		}
		lines = append(lines, "")
	}
	return lines
}

// Render produces the help panel output.
func (p *HelpPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[help panel: render error]"
	}

	lines := p.lines(state)
	maxLines := p.visibleLines(state)
	maxScroll := max(len(lines)-maxLines, 0)
	scroll := min(max(state.ScrollOffset, 0), maxScroll)
	visible := lines[scroll:min(scroll+maxLines, len(lines))]

	content := strings.Join(visible, "\n")
	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf(" [%d/%d] ", scroll+1, maxScroll+1)
		up, down := "▲ ", " ▼"
		if state.Theme != nil {
			scrollInfo = state.Theme.Muted().Render(scrollInfo)
			up = state.Theme.Warning().Render(up)
			down = state.Theme.Warning().Render(down)
		}
		if scroll > 0 {
			scrollInfo = up + scrollInfo
		}
		if scroll < maxScroll {
			scrollInfo += down
		}
		content += "\n" + scrollInfo
		p.height = len(visible) + 1
	} else {
		p.height = len(visible)
	}

	return content
}

// Height returns the rendered height of the panel.
func (p *HelpPanel) Height() int {
	return p.height
}
