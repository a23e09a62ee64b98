package tui

// Panel dimensions
const (
	// DefaultPanelWidth is the panel column width when none is configured.
	DefaultPanelWidth = 56

	// MinPanelWidth is the narrowest panel that still fits a feature summary.
	MinPanelWidth = 32
)

// Layout offsets - these represent the space taken by fixed UI elements
const (
	// HeaderHeight is the title line plus its bottom margin.
	HeaderHeight = 2

	// HelpBarHeight is the help line plus its top margin.
	HelpBarHeight = 2

	// PanelGap is the gap between the home area and the panel.
	PanelGap = 2

	// MainAreaHeightOffset accounts for header + help bar + status line.
	MainAreaHeightOffset = HeaderHeight + HelpBarHeight + 1
)

// CalculatePanelDimensions returns the panel width and height for a
// terminal of the given size. The panel never exceeds the terminal and
// takes the full width on narrow terminals.
func CalculatePanelDimensions(termWidth, termHeight, panelWidth int) (width, height int) {
	if panelWidth <= 0 {
		panelWidth = DefaultPanelWidth
	}
	width = panelWidth
	if termWidth-width-PanelGap < MinPanelWidth {
		width = termWidth
	}
	width = max(min(width, termWidth), 1)
	height = max(termHeight-MainAreaHeightOffset, 1)
	return width, height
}

// sideBySide reports whether the home area fits beside the panel.
func sideBySide(termWidth, panelWidth int) bool {
	return termWidth-panelWidth-PanelGap >= MinPanelWidth
}
