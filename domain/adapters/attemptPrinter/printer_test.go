package attemptPrinter_test

import (
	"fmt"
	"testing"

	"attachmentCrawler/domain/adapters/attemptPrinter"
	"attachmentCrawler/domain/models"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestAttemptPrinter(t *testing.T) {
	t.Run("prints completed attempts", func(t *testing.T) {
		logger := &recordingLogger{}
		attemptPrinter.New(logger).Print(models.DownloadAttempt{
			Link:      models.Link{Href: "http://x.test/a.csv"},
			Path:      "out/report.csv",
			Bytes:     12,
			Completed: true,
		})
		assert.Equal(t, []string{"Url: http://x.test/a.csv File: out/report.csv (12 bytes)"}, logger.lines)
	})
	t.Run("ignores incomplete attempts", func(t *testing.T) {
		logger := &recordingLogger{}
		attemptPrinter.New(logger).Print(models.DownloadAttempt{Link: models.Link{Href: "http://x.test/b"}})
		assert.Empty(t, logger.lines)
	})
	t.Run("prints the summary", func(t *testing.T) {
		logger := &recordingLogger{}
		attemptPrinter.New(logger).PrintSummary(models.Summary{Links: 5, Saved: 2, Skipped: 1, NoAttachment: 1, Failed: 1})
		assert.Equal(t, "Links: 5 Saved: 2 Skipped: 1 No attachment: 1 Failed: 1", logger.lines[len(logger.lines)-1])
	})
}
