// Package view provides the presentational pieces of the onboarding panel.
//
// Views are stateless: they take the data to show and a focus flag and
// return a string. Layout and focus order live in the panel package.
//
// # Main Types
//
//   - [OpenerView]: welcome prompt with the Start/Resume button and skip link
//   - [ActionItem]: one feature summary in the feature list
//   - [FeatureDetailView]: a selected feature with its markdown description
//
// # Helpers
//
//   - [Glyph]: maps an icon id to a terminal glyph
//   - [Greeting]: the "Hello! name" header of the feature list
//   - [Button], [Link]: focusable controls
//
// Labels are passed through a [locale.Translator] before rendering, so the
// views never hold translated text themselves.
package view

import "github.com/Iron-Ham/onboard/internal/locale"

// translator returns tr, or the English passthrough when tr is nil.
func translator(tr *locale.Translator) *locale.Translator {
	if tr == nil {
		return locale.Identity()
	}
	return tr
}
