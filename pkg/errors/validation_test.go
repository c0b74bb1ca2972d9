package errors

import (
	"strings"
	"testing"
)

func TestValidateHomeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "main", false},
		{"valid with dash", "home-lab", false},
		{"valid with underscore", "media_rack", false},
		{"valid with space", "living room", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 65), true},
		{"path traversal", "../etc", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHomeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHomeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
