package fileWriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"attachmentCrawler/domain/adapters/dispositionFilename"
)

// FileWriter stores downloaded bodies inside a single output directory.
type FileWriter struct {
	outputDir string
}

// New creates the output directory if needed.
func New(outputDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// Write copies body to name inside the output directory, replacing any existing file.
// The body goes to a temporary file that is renamed into place once complete, so a
// failed write never touches a file saved under the same name.
func (w *FileWriter) Write(name string, body io.Reader) (string, int64, error) {
	name, err := dispositionFilename.Sanitize(name)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(w.outputDir, name)

	file, err := os.CreateTemp(w.outputDir, "."+name+".*.part")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	tmp := file.Name()

	n, err := io.Copy(file, body)
	if err == nil {
		err = file.Chmod(0644)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return "", n, fmt.Errorf("failed to write file: %w", err)
	}
	return path, n, nil
}
