package downloader_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"testing"

	"attachmentCrawler/domain/downloader"
	"attachmentCrawler/domain/downloader/internal/mocks"
	"attachmentCrawler/domain/models"

	"github.com/stretchr/testify/assert"
)

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func response(header http.Header, body *trackingBody) models.Response {
	return models.Response{StatusCode: http.StatusOK, Header: header, Body: body}
}

func writingSink() *mocks.SinkMock {
	return &mocks.SinkMock{
		WriteFunc: func(name string, body io.Reader) (string, int64, error) {
			n, err := io.Copy(io.Discard, body)
			return "out/" + name, n, err
		},
	}
}

func TestDownloader_Download(t *testing.T) {
	link := models.Link{Position: 3, Href: "http://x.test/a.csv"}

	t.Run("saves an attachment under the suggested name", func(t *testing.T) {
		t.Parallel()

		body := &trackingBody{Reader: strings.NewReader("a,b\n")}
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, rawURL string) (models.Response, error) {
				return response(http.Header{"Content-Disposition": {`attachment; filename="report.csv"`}}, body), nil
			},
		}
		sink := writingSink()

		attempt, err := downloader.New(fetcher, sink).Download(context.Background(), link)
		assert.NoError(t, err)

		assert.Len(t, fetcher.FetchCalls(), 1)
		assert.Equal(t, link.Href, fetcher.FetchCalls()[0].RawURL, "the link's own href must be fetched")
		assert.Len(t, sink.WriteCalls(), 1)
		assert.Equal(t, "report.csv", sink.WriteCalls()[0].Name)

		assert.True(t, attempt.Completed)
		assert.Equal(t, link, attempt.Link)
		assert.Equal(t, "report.csv", attempt.Filename)
		assert.Equal(t, "out/report.csv", attempt.Path)
		assert.EqualValues(t, 4, attempt.Bytes)
		assert.True(t, body.closed)
	})
	t.Run("no content-disposition header writes nothing", func(t *testing.T) {
		t.Parallel()

		body := &trackingBody{Reader: strings.NewReader("<html></html>")}
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, rawURL string) (models.Response, error) {
				return response(http.Header{"Content-Type": {"text/html"}}, body), nil
			},
		}
		sink := writingSink()

		attempt, err := downloader.New(fetcher, sink).Download(context.Background(), link)
		assert.ErrorIs(t, err, models.ErrHeaderMissing)
		assert.Empty(t, sink.WriteCalls())
		assert.False(t, attempt.Completed)
		assert.True(t, body.closed)
	})
	t.Run("fetch errors are returned unchanged", func(t *testing.T) {
		t.Parallel()

		fetchErr := models.NewAttemptError(models.ErrFetch, link.Href, errors.New("connection refused"))
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, rawURL string) (models.Response, error) {
				return models.Response{}, fetchErr
			},
		}
		sink := writingSink()

		_, err := downloader.New(fetcher, sink).Download(context.Background(), link)
		assert.ErrorIs(t, err, models.ErrFetch)
		assert.Empty(t, sink.WriteCalls())
	})
	t.Run("unusable filename is not written", func(t *testing.T) {
		t.Parallel()

		body := &trackingBody{Reader: strings.NewReader("x")}
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, rawURL string) (models.Response, error) {
				return response(http.Header{"Content-Disposition": {`attachment; filename=".."`}}, body), nil
			},
		}
		sink := writingSink()

		_, err := downloader.New(fetcher, sink).Download(context.Background(), link)
		assert.ErrorIs(t, err, models.ErrUnsafeFilename)
		assert.Contains(t, err.Error(), link.Href)
		assert.Empty(t, sink.WriteCalls())
		assert.True(t, body.closed)
	})
	t.Run("sink failures are write errors", func(t *testing.T) {
		t.Parallel()

		body := &trackingBody{Reader: strings.NewReader("x")}
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, rawURL string) (models.Response, error) {
				return response(http.Header{"Content-Disposition": {`attachment; filename=report.csv`}}, body), nil
			},
		}
		sink := &mocks.SinkMock{
			WriteFunc: func(name string, body io.Reader) (string, int64, error) {
				return "", 0, fs.ErrPermission
			},
		}

		attempt, err := downloader.New(fetcher, sink).Download(context.Background(), link)
		assert.ErrorIs(t, err, models.ErrWrite)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.False(t, attempt.Completed)
		assert.True(t, body.closed)
	})
}
