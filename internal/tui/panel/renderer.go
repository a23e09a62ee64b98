// Package panel provides the onboarding panel component and the renderer
// contract shared by everything the host draws on screen.
package panel

import (
	"errors"

	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	"github.com/charmbracelet/lipgloss"
)

// Common errors returned by RenderState validation.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
	ErrNilTheme      = errors.New("theme cannot be nil")
)

// PanelRenderer defines the interface for rendering UI panels.
type PanelRenderer interface {
	// Render produces the visual output for this panel given the current state.
	// The returned string contains the rendered content, potentially with
	// ANSI escape codes for styling.
	Render(state *RenderState) string

	// Height returns the rendered height of the panel in terminal rows.
	Height() int
}

// Theme provides styling configuration for panel rendering.
// This interface abstracts the styling system, allowing panels to
// request styles without depending on concrete style implementations.
type Theme interface {
	// Primary returns the primary style for emphasis.
	Primary() lipgloss.Style
	// Secondary returns the secondary style for less prominent elements.
	Secondary() lipgloss.Style
	// Muted returns the muted style for de-emphasized elements.
	Muted() lipgloss.Style
	// Error returns the style for error states.
	Error() lipgloss.Style
	// Warning returns the style for warning states.
	Warning() lipgloss.Style
	// Surface returns the style for surface/background areas.
	Surface() lipgloss.Style
	// Border returns the style for borders.
	Border() lipgloss.Style
}

// HelpSection represents a section of help content with keybindings.
type HelpSection struct {
	// Title is the section name (e.g., "Navigation", "Actions").
	Title string
	// Items contains the keybindings in this section.
	Items []HelpItem
}

// HelpItem represents a single keybinding in the help panel.
type HelpItem struct {
	// Key is the keybinding (e.g., "j/k", "enter").
	Key string
	// Description explains what the keybinding does.
	Description string
}

// HelpSectionsFromKeymap converts a mode's bindings into help sections.
func HelpSectionsFromKeymap(km *keymap.Keymap, mode keymap.Mode) []HelpSection {
	if km == nil {
		return nil
	}
	var sections []HelpSection
	for _, cat := range km.Categories(mode) {
		section := HelpSection{Title: cat.Title}
		for _, b := range cat.Bindings {
			section.Items = append(section.Items, HelpItem{Key: b.String(), Description: b.Description()})
		}
		sections = append(sections, section)
	}
	return sections
}

// RenderState holds the complete state needed for rendering a panel.
// It provides a snapshot of the host at render time, decoupling panel
// renderers from the full application model.
type RenderState struct {
	// Width is the available width in terminal columns.
	Width int

	// Height is the available height in terminal rows.
	Height int

	// Theme provides styling for the panel.
	Theme Theme

	// ScrollOffset is the current scroll position for scrollable panels.
	ScrollOffset int

	// Focused indicates whether this panel currently has focus.
	Focused bool

	// HelpSections contains help text organized by section.
	HelpSections []HelpSection
}

// Validate checks that the RenderState has valid values for rendering.
// Returns an error if any required fields are invalid.
func (rs *RenderState) Validate() error {
	if err := rs.ValidateBasic(); err != nil {
		return err
	}
	if rs.Theme == nil {
		return ErrNilTheme
	}
	return nil
}

// ValidateBasic performs minimal validation checking only dimensions.
// Use this when theme may be optional (e.g., for tests with plain output).
func (rs *RenderState) ValidateBasic() error {
	if rs.Width <= 0 {
		return ErrInvalidWidth
	}
	if rs.Height <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// NewRenderState creates a RenderState with the given dimensions.
func NewRenderState(width, height int) *RenderState {
	return &RenderState{
		Width:  width,
		Height: height,
	}
}
