package attemptPrinter

import (
	"attachmentCrawler/domain/models"
)

type Logger interface {
	Printf(format string, args ...interface{})
}

type AttemptPrinter struct {
	logger Logger
}

func New(logger Logger) *AttemptPrinter {
	return &AttemptPrinter{logger: logger}
}

func (p *AttemptPrinter) Print(attempt models.DownloadAttempt) {
	if !attempt.Completed {
		return
	}
	p.logger.Printf("Url: %s File: %s (%d bytes)", attempt.Link.Href, attempt.Path, attempt.Bytes)
}

// PrintSummary logs the totals of a finished run.
func (p *AttemptPrinter) PrintSummary(summary models.Summary) {
	p.logger.Printf("----------------------------------------------------")
	p.logger.Printf("Links: %d Saved: %d Skipped: %d No attachment: %d Failed: %d",
		summary.Links, summary.Saved, summary.Skipped, summary.NoAttachment, summary.Failed)
}
