package urlFetcherExtractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"

	"attachmentCrawler/domain/models"
)

type HTTPFetcherExtractor struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcherExtractor creates a fetcher. A zero timeout leaves requests bounded only by the transport.
func NewHTTPFetcherExtractor(timeout time.Duration, userAgent string) HTTPFetcherExtractor {
	return HTTPFetcherExtractor{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch issues a GET for rawURL. Anything other than a 2xx status is an ErrFetch and the body is already closed.
func (fe HTTPFetcherExtractor) Fetch(ctx context.Context, rawURL string) (models.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return models.Response{}, models.NewAttemptError(models.ErrFetch, rawURL, err)
	}
	if fe.userAgent != "" {
		req.Header.Set("User-Agent", fe.userAgent)
	}
	resp, err := fe.client.Do(req)
	if err != nil {
		return models.Response{}, models.NewAttemptError(models.ErrFetch, rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return models.Response{}, models.NewAttemptError(models.ErrFetch, rawURL, fmt.Errorf("response status %d", resp.StatusCode))
	}
	return models.Response{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// Extract reads a UTF-8 html document and returns the href of every anchor in document order.
func (fe HTTPFetcherExtractor) Extract(rawURL string, contents io.Reader) (models.LinkList, error) {
	buf, err := io.ReadAll(contents)
	if err != nil {
		return nil, models.NewAttemptError(models.ErrDecode, rawURL, err)
	}
	if !utf8.Valid(buf) {
		return nil, models.NewAttemptError(models.ErrDecode, rawURL, errors.New("body is not valid utf-8"))
	}
	return fe.getLinks(bytes.NewReader(buf)), nil
}

// getLinks collects the href of every anchor. Anchors without one are skipped.
func (fe HTTPFetcherExtractor) getLinks(body io.Reader) models.LinkList {
	links := models.LinkList{}

	z := html.NewTokenizer(body)
	for {
		tt := z.Next()

		switch tt {
		case html.ErrorToken:
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
	}
}
