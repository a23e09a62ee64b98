package view

import (
	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
)

// FocusMarker prefixes focused inline controls.
const FocusMarker = "› "

// Button renders a bordered button.
func Button(label string, focused bool) string {
	s := styles.GetActiveTheme()
	if focused {
		return s.ButtonFocused.Render(label)
	}
	return s.Button.Render(label)
}

// Link renders an inline control such as the skip or toggle link.
func Link(label string, focused bool) string {
	s := styles.GetActiveTheme()
	if focused {
		return FocusMarker + s.LinkFocused.Render(label)
	}
	return "  " + s.Link.Render(label)
}

// CloseControl renders the dismiss control shown in the panel corner.
func CloseControl(tr *locale.Translator, focused bool) string {
	label := Glyph("times", IconSizeSmall) + " " + translator(tr).T("Close")
	if focused {
		return styles.GetActiveTheme().LinkFocused.Render(label)
	}
	return styles.GetActiveTheme().CloseControl.Render(label)
}

// BackControl renders the detail view's back control.
func BackControl(tr *locale.Translator, focused bool) string {
	return Link(Glyph("arrow-left", IconSizeLarge)+" "+translator(tr).T("Back"), focused)
}

// ToggleControl renders the feature list's collapse/expand control.
func ToggleControl(tr *locale.Translator, label string, focused bool) string {
	return Link(translator(tr).T(label)+" "+Glyph("angle-double-right", IconSizeSmall), focused)
}
