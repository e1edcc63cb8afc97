package errors

import (
	"path/filepath"
	"strings"
)

// MaxNameLength bounds the length of a single vertex name.
const MaxNameLength = 256

// ValidateName validates a vertex name before it becomes a path segment.
//
// The validation rules mirror the path normalization preconditions:
//   - No empty names
//   - No separators ('/')
//   - No bytes ordered below '.' (control characters, spaces, punctuation)
//   - No "." or ".." (they would be collapsed by normalization)
//   - Maximum length of [MaxNameLength] bytes
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", MaxNameLength)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidName, "name cannot be %q", name)
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '/' {
			return New(ErrCodeInvalidName, "name %q contains a path separator", name)
		}
		if c < '.' {
			return New(ErrCodeInvalidName, "name %q contains invalid character %q", name, c)
		}
	}

	return nil
}

// schemaExtensions lists the manifest formats the loader understands.
var schemaExtensions = []string{".toml", ".yaml", ".yml"}

// ValidateSchemaFilename validates a schema manifest filename.
// It must be a simple basename with a supported extension.
func ValidateSchemaFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "schema filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "schema filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "schema filename cannot be a hidden file")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range schemaExtensions {
		if ext == e {
			return nil
		}
	}
	return New(ErrCodeInvalidManifest, "unsupported schema format %q (want .toml, .yaml or .yml)", ext)
}
