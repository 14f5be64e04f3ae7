//go:generate moq -out internal/mocks/fetcherextractor_moq.go -pkg mocks . FetcherExtractor
//go:generate moq -out internal/mocks/pool_moq.go -pkg mocks . Pool

// Package pageLinkDownloader fetches a seed page and downloads every attachment it links to.
package pageLinkDownloader

import (
	"context"
	"fmt"
	"io"

	"attachmentCrawler/domain/models"
)

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	// FetcherExtractor retrieves the seed page and pulls the links out of it.
	FetcherExtractor interface {
		Fetch(ctx context.Context, rawURL string) (models.Response, error)
		Extract(rawURL string, contents io.Reader) (models.LinkList, error)
	}

	// Pool attempts every link of the seed page.
	Pool interface {
		Run(ctx context.Context, links models.LinkList) (models.Summary, error)
	}
)

type PageLinkDownloader struct {
	logger           Logger
	seedURL          string
	fetcherExtractor FetcherExtractor
	pool             Pool
}

func New(logger Logger, seedURL string, fetcherExtractor FetcherExtractor, pool Pool) *PageLinkDownloader {
	return &PageLinkDownloader{
		logger:           logger,
		seedURL:          seedURL,
		fetcherExtractor: fetcherExtractor,
		pool:             pool,
	}
}

// Run fetches the seed page once and hands its links to the pool.
// Failing to fetch or decode the seed page is fatal and no link is attempted.
func (d *PageLinkDownloader) Run(ctx context.Context) (models.Summary, error) {
	links, err := d.links(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("seed page: %w", err)
	}
	d.logger.Printf("found %d links on %s", len(links), d.seedURL)

	return d.pool.Run(ctx, links)
}

func (d *PageLinkDownloader) links(ctx context.Context) (models.LinkList, error) {
	resp, err := d.fetcherExtractor.Fetch(ctx, d.seedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return d.fetcherExtractor.Extract(d.seedURL, resp.Body)
}
