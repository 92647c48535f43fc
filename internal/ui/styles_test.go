package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "", ok: false},
		{input: "NONE", ok: false},
		{input: "off", ok: false},
		{input: "default", ok: false},
		{input: "0", want: "0", ok: true},
		{input: "255", want: "255", ok: true},
		{input: " 212 ", want: "212", ok: true},
		{input: "300", ok: false},
		{input: "-5", ok: false},
		{input: "#FF00aa", want: "#ff00aa", ok: true},
		{input: "#f0a", want: "#ff00aa", ok: true},
		{input: "#12345", ok: false},
		{input: "#gggggg", ok: false},
		{input: "purple", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConfigureTheme(t *testing.T) {
	origAccent, origColor := Accent, accentColor
	t.Cleanup(func() {
		Accent, accentColor = origAccent, origColor
	})

	ConfigureTheme("")
	if got, ok := AccentColor(); !ok || got != defaultAccentColor {
		t.Fatalf("empty value should keep the default accent, got %q", got)
	}

	ConfigureTheme("#abc")
	if got, ok := AccentColor(); !ok || got != "#aabbcc" {
		t.Fatalf("AccentColor() = %q, %v", got, ok)
	}

	ConfigureTheme("off")
	if _, ok := AccentColor(); ok {
		t.Fatal("expected accent color to be disabled")
	}
}
