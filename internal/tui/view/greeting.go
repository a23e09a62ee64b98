package view

import (
	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
)

// Greeting renders the feature list header: a hello line with the user's
// name and the question prompting a choice.
func Greeting(tr *locale.Translator, node onboard.Node) string {
	tr = translator(tr)
	s := styles.GetActiveTheme()

	hello := tr.T(node.Label) + "! " + s.Greeting.Render(node.UserName) + " 👋"
	return hello + "\n" + s.Muted.Render(tr.T(onboard.LabelWhichFeature))
}
