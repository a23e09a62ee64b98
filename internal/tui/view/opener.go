package view

import (
	"strings"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
)

// OpenerView renders the first screen of the onboarding panel: a welcome
// line, the Start or Resume button and the skip link.
type OpenerView struct {
	tr *locale.Translator
}

// NewOpenerView creates an OpenerView that translates labels with tr.
func NewOpenerView(tr *locale.Translator) *OpenerView {
	return &OpenerView{tr: translator(tr)}
}

// OpenerFocus selects the focused control of the opener.
type OpenerFocus int

const (
	OpenerFocusNone OpenerFocus = iota
	OpenerFocusButton
	OpenerFocusSkip
)

// Render renders the opener for the opener and skip nodes.
func (v *OpenerView) Render(opener, skip onboard.Node, focus OpenerFocus) string {
	s := styles.GetActiveTheme()
	var b strings.Builder

	b.WriteString(s.Title.Render(v.tr.T("Welcome") + ", " + opener.UserName))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(v.tr.T("Let's get your workspace set up")))
	b.WriteString("\n\n")
	b.WriteString(Button(v.tr.T(opener.Label), focus == OpenerFocusButton))
	if skip.Label != "" {
		b.WriteString("\n")
		b.WriteString(Link(v.tr.T(skip.Label), focus == OpenerFocusSkip))
	}

	return b.String()
}
