package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  свет  ", "свет"},
		{"lowercases", "СВЕТ", "свет"},
		{"compresses inner spaces", "белый   свет", "белый свет"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"preserves hyphen", "кто-то", "кто-то"},
		{"preserves ё", "ёлка", "ёлка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWord(tt.in); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
