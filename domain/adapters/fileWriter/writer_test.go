package fileWriter_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attachmentCrawler/domain/adapters/fileWriter"
	"attachmentCrawler/domain/models"

	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestFileWriter_Write(t *testing.T) {
	t.Run("writes the body under the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		w, err := fileWriter.New(dir)
		assert.NoError(t, err)

		path, n, err := w.Write("report.csv", strings.NewReader("a,b\n1,2\n"))
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.csv"), path)
		assert.EqualValues(t, 8, n)

		contents, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(contents))
	})
	t.Run("overwrites an existing file", func(t *testing.T) {
		dir := t.TempDir()
		w, err := fileWriter.New(dir)
		assert.NoError(t, err)

		_, _, err = w.Write("enr.txt", strings.NewReader("old contents that are longer"))
		assert.NoError(t, err)
		path, _, err := w.Write("enr.txt", strings.NewReader("new"))
		assert.NoError(t, err)

		contents, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "new", string(contents))
	})
	t.Run("keeps traversal inside the output directory", func(t *testing.T) {
		dir := t.TempDir()
		w, err := fileWriter.New(dir)
		assert.NoError(t, err)

		path, _, err := w.Write("../../escape.txt", strings.NewReader("x"))
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
	})
	t.Run("rejects unusable names", func(t *testing.T) {
		w, err := fileWriter.New(t.TempDir())
		assert.NoError(t, err)

		_, _, err = w.Write("..", strings.NewReader("x"))
		assert.ErrorIs(t, err, models.ErrUnsafeFilename)
	})
	t.Run("removes the partial file when the body fails", func(t *testing.T) {
		dir := t.TempDir()
		w, err := fileWriter.New(dir)
		assert.NoError(t, err)

		_, _, err = w.Write("broken.bin", io.MultiReader(strings.NewReader("partial"), failingReader{}))
		assert.Error(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "broken.bin"))

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Empty(t, entries, "temporary file left behind")
	})
	t.Run("a failed write keeps the file another write saved under the same name", func(t *testing.T) {
		dir := t.TempDir()
		w, err := fileWriter.New(dir)
		assert.NoError(t, err)

		pr, pw := io.Pipe()
		failed := make(chan error, 1)
		go func() {
			_, _, err := w.Write("enr.txt", pr)
			failed <- err
		}()

		// the first write is mid-copy while the second one completes.
		_, err = pw.Write([]byte("partial"))
		assert.NoError(t, err)

		path, _, err := w.Write("enr.txt", strings.NewReader("complete"))
		assert.NoError(t, err)

		pw.CloseWithError(errors.New("connection reset"))
		assert.Error(t, <-failed)

		contents, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "complete", string(contents))

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
