package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Node", false},
		{"with underscore", "my_type", false},
		{"with dot", "types.h", false},
		{"digits", "Vec3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"separator", "a/b", true},
		{"space", "a b", true},
		{"dash", "a-b", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, CodeOf(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateSchemaFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "schema.toml", false},
		{"yaml", "schema.yaml", false},
		{"yml upper", "Schema.YML", false},

		{"empty", "", true},
		{"with path /", "path/to/schema.toml", true},
		{"with path \\", "path\\schema.toml", true},
		{"hidden file", ".schema.toml", true},
		{"json", "schema.json", true},
		{"no extension", "schema", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchemaFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchemaFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
