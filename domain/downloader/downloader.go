//go:generate moq -out internal/mocks/fetcher_moq.go -pkg mocks . Fetcher
//go:generate moq -out internal/mocks/sink_moq.go -pkg mocks . Sink

package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"attachmentCrawler/domain/adapters/dispositionFilename"
	"attachmentCrawler/domain/models"
)

const dispositionHeader = "Content-Disposition"

type (
	// Fetcher retrieves a single url.
	Fetcher interface {
		Fetch(ctx context.Context, rawURL string) (models.Response, error)
	}

	// Sink stores a downloaded body under a file name and reports where it went.
	Sink interface {
		Write(name string, body io.Reader) (string, int64, error)
	}
)

type Downloader struct {
	fetcher Fetcher
	sink    Sink
}

func New(fetcher Fetcher, sink Sink) *Downloader {
	return &Downloader{
		fetcher: fetcher,
		sink:    sink,
	}
}

// Download fetches the link's own href and saves the body if the response is an attachment.
// The returned error is one of the models failure kinds; ErrHeaderMissing means the link
// was not an attachment and nothing was written.
func (d *Downloader) Download(ctx context.Context, link models.Link) (models.DownloadAttempt, error) {
	attempt := models.DownloadAttempt{Link: link}

	resp, err := d.fetcher.Fetch(ctx, link.Href)
	if err != nil {
		return attempt, err
	}
	defer resp.Body.Close()
	attempt.Header = resp.Header

	if len(resp.Header.Values(dispositionHeader)) == 0 {
		return attempt, models.NewAttemptError(models.ErrHeaderMissing, link.Href, nil)
	}

	name, err := dispositionFilename.FromHeader(resp.Header.Get(dispositionHeader), link.Href)
	if err != nil {
		return attempt, fmt.Errorf("%s: %w", link.Href, err)
	}
	attempt.Filename = name

	path, n, err := d.sink.Write(name, resp.Body)
	attempt.Bytes = n
	if err != nil {
		if errors.Is(err, models.ErrUnsafeFilename) {
			return attempt, fmt.Errorf("%s: %w", link.Href, err)
		}
		return attempt, models.NewAttemptError(models.ErrWrite, link.Href, err)
	}
	attempt.Path = path
	attempt.Completed = true
	return attempt, nil
}
