package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveText writes the summary verbatim as <derived name>.txt in destDir
// and returns the path.
func SaveText(destDir, summary string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(destDir, BaseName(summary)+".txt")
	if err := os.WriteFile(path, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

// SaveDocx renders the markdown summary as <derived name>.docx in destDir
// and returns the path.
func SaveDocx(destDir, summary string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := BaseName(summary)
	path := filepath.Join(destDir, base+".docx")
	if err := markdownToDocx(base, summary, path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return path, nil
}
