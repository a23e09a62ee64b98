package onboard

import "fmt"

// letters returns n features named A, B, C...
func letters(n int) []Feature {
	features := make([]Feature, n)
	for i := range features {
		name := string(rune('A' + i))
		features[i] = Feature{
			Name:        name,
			Text:        "Feature " + name,
			Description: fmt.Sprintf("Set up feature %s", name),
			Icon:        "star",
			Color:       "#10B981",
		}
	}
	return features
}

type recordingHost struct {
	calls []string
}

func (h *recordingHost) ChangeStep(step Step)    { h.calls = append(h.calls, "step:"+string(step)) }
func (h *recordingHost) ChangeRoute(path string) { h.calls = append(h.calls, "route:"+path) }
func (h *recordingHost) ForceComplete()          { h.calls = append(h.calls, "force") }
