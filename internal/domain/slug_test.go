package domain

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Hello, World!", want: "hello-world"},
		{name: "lowercase passthrough", input: "hello-world", want: "hello-world"},
		{name: "collapse punctuation runs", input: "Rock & Roll -- Night", want: "rock-roll-night"},
		{name: "trim edge hyphens", input: "--Opening Night--", want: "opening-night"},
		{name: "diacritics stripped", input: "Café Münchner Kindl", want: "cafe-munchner-kindl"},
		{name: "naive resume", input: "Naïve Résumé", want: "naive-resume"},
		{name: "digits kept", input: "Expo 2026", want: "expo-2026"},
		{name: "whitespace only", input: "   ", want: "item"},
		{name: "empty", input: "", want: "item"},
		{name: "symbols only", input: "!!! ???", want: "item"},
		{name: "tabs and newlines", input: "a\tb\nc", want: "a-b-c"},
		{name: "already a slug with suffix", input: "hello-world-2", want: "hello-world-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"Hello, World!", "hello world", "HELLO---WORLD"}
	for _, in := range inputs {
		if got := Slugify(in); got != "hello-world" {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, "hello-world")
		}
	}
}
