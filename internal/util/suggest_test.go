package util

import "testing"

func TestSuggest(t *testing.T) {
	steps := []string{"initial", "inComplete", "featureList", "featureDetail"}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "case only", input: "featurelist", want: "featureList", wantOK: true},
		{name: "one typo", input: "intial", want: "initial", wantOK: true},
		{name: "transposed", input: "featureDetial", want: "featureDetail", wantOK: true},
		{name: "unrelated", input: "banana", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, steps)
			if ok != tt.wantOK {
				t.Fatalf("Suggest(%q) ok = %v, want %v (got %q)", tt.input, ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDidYouMean(t *testing.T) {
	themes := []string{"default", "dracula", "nord"}

	if got, want := DidYouMean("dracla", themes), ` (did you mean "dracula"?)`; got != want {
		t.Errorf("DidYouMean(dracla) = %q, want %q", got, want)
	}
	if got := DidYouMean("solarized", themes); got != "" {
		t.Errorf("DidYouMean(solarized) = %q, want empty", got)
	}
}
