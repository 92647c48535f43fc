package shellquote

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"with space", "'with space'"},
		{"it's", `'it'\''s'`},
		{"$HOME", "'$HOME'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    string
	}{
		{"code --wait", []string{"/n/a.md"}, "code --wait '/n/a.md'"},
		{"  open -a Typora ", []string{"/n/my note.md"}, "open -a Typora '/n/my note.md'"},
		{"vim", nil, "vim"},
	}
	for _, tt := range tests {
		if got := Append(tt.command, tt.args...); got != tt.want {
			t.Errorf("Append(%q, %q) = %q, want %q", tt.command, tt.args, got, tt.want)
		}
	}
}
