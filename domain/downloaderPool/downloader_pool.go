//go:generate moq -out internal/mocks/downloader_moq.go -pkg mocks . Downloader
//go:generate moq -out internal/mocks/attemptprinter_moq.go -pkg mocks . AttemptPrinter

package downloaderPool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"attachmentCrawler/domain/models"
)

type (
	Logger interface {
		Debugf(format string, args ...interface{})
		Errorf(format string, args ...interface{})
	}

	Queue interface {
		Push(link models.Link) error
		Pop() (models.Link, bool)
	}

	Downloader interface {
		Download(ctx context.Context, link models.Link) (models.DownloadAttempt, error)
	}

	// LinkFilter returns false if the link must not be fetched.
	LinkFilter interface {
		ShouldFetch(link models.Link) bool
	}

	AttemptPrinter interface {
		Print(attempt models.DownloadAttempt)
	}
)

// DownloadCompletedHook is called after a file has been saved.
type DownloadCompletedHook func(context.Context, models.DownloadAttempt)

func NoOpCompletedHook(ctx context.Context, attempt models.DownloadAttempt) {}

// DownloaderPool drains a queue of links with a fixed number of workers.
type DownloaderPool struct {
	logger Logger

	size     int   // Number of workers
	jobQueue Queue // Links to be processed.

	downloader Downloader
	printer    AttemptPrinter

	linkFilters []LinkFilter // Filters to apply to links.

	completionHook DownloadCompletedHook // Hook to call when a file is saved.

	mu      sync.Mutex
	summary models.Summary
}

// New creates a new DownloaderPool.
// Filters are applied in the order they are specified and a link must pass all of them.
// With a size of 1 links are downloaded one at a time in page order.
func New(logger Logger, size int, jobQueue Queue, downloader Downloader, printer AttemptPrinter, linkFilters []LinkFilter, completionHook DownloadCompletedHook) *DownloaderPool {
	if size < 1 {
		size = 1
	}
	if completionHook == nil {
		completionHook = NoOpCompletedHook
	}
	return &DownloaderPool{
		logger: logger,

		size:     size,
		jobQueue: jobQueue,

		downloader: downloader,
		printer:    printer,

		linkFilters: linkFilters,

		completionHook: completionHook,
	}
}

// Run queues every link and blocks until all of them have been attempted.
// A failed link never stops the run; only cancelling ctx does.
func (dp *DownloaderPool) Run(ctx context.Context, links models.LinkList) (models.Summary, error) {
	dp.mu.Lock()
	dp.summary = models.Summary{Links: len(links)}
	dp.mu.Unlock()

	for _, link := range links.Links() {
		if err := dp.jobQueue.Push(link); err != nil {
			return dp.Summary(), fmt.Errorf("queue link %q: %w", link.Href, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < dp.size; i++ {
		g.Go(func() error {
			return dp.work(ctx)
		})
	}
	err := g.Wait()
	return dp.Summary(), err
}

// Summary returns the counts of the current or last run.
func (dp *DownloaderPool) Summary() models.Summary {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	return dp.summary
}

func (dp *DownloaderPool) work(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		link, ok := dp.jobQueue.Pop()
		if !ok {
			return nil
		}

		if !dp.shouldFetch(link) {
			dp.logger.Debugf("skipping %q", link.Href)
			dp.count(func(s *models.Summary) { s.Skipped++ })
			continue
		}

		attempt, err := dp.downloader.Download(ctx, link)
		switch {
		case err == nil:
			dp.count(func(s *models.Summary) { s.Saved++ })
			dp.printer.Print(attempt)
			dp.completionHook(ctx, attempt)
		case errors.Is(err, models.ErrHeaderMissing):
			dp.logger.Debugf("no attachment at %s", link.Href)
			dp.count(func(s *models.Summary) { s.NoAttachment++ })
		default:
			dp.logger.Errorf("failed to download %s: %v", link.Href, err)
			dp.count(func(s *models.Summary) { s.Failed++ })
		}
	}
}

func (dp *DownloaderPool) shouldFetch(link models.Link) bool {
	for _, filter := range dp.linkFilters {
		if !filter.ShouldFetch(link) {
			return false
		}
	}
	return true
}

func (dp *DownloaderPool) count(fn func(*models.Summary)) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	fn(&dp.summary)
}
