package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadMaterial loads a promotional material file. HTML files are
// reduced to visible text; everything else (plain text, markdown) is
// passed through untouched.
func ReadMaterial(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read material: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractText(string(data))
		if err != nil {
			return "", fmt.Errorf("extract html text: %w", err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}
