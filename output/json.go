// Package output writes compiled walkthrough document: canonical JSON and
// optional SQLite index of items.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"guidec/guide"
)

// MarshalDocument serializes document as 2-space indented UTF-8 JSON with
// trailing newline. Maps are written with sorted keys and HTML characters are
// not escaped, so equal documents always produce identical bytes.
func MarshalDocument(doc *guide.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nothing to serialize")
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Encode terminates output with newline
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path creating missing directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
