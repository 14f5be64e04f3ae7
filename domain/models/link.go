package models

import (
	"io"
	"net/http"
)

// DefaultSeedURL is the index page crawled when no other seed is configured.
const DefaultSeedURL = "http://www.cde.ca.gov/ds/sd/sd/filesenr.asp"

// LinkList holds href values in the order they appear on the seed page.
type LinkList []string

// Links numbers each href by its position on the page.
func (l LinkList) Links() []Link {
	links := make([]Link, 0, len(l))
	for i, href := range l {
		links = append(links, Link{Position: i, Href: href})
	}
	return links
}

// Link is a single LinkList entry waiting to be downloaded.
type Link struct {
	Position int
	Href     string
}

// Response is a fetched resource. Body must be closed by the caller.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// DownloadAttempt records what happened to one link.
type DownloadAttempt struct {
	Link      Link
	Header    http.Header
	Filename  string // suggested by the server, after sanitizing
	Path      string // where the body was written
	Bytes     int64
	Completed bool // zero value is false
}

// Summary counts the outcome of every link in a run.
type Summary struct {
	Links        int
	Skipped      int // filtered out, never fetched
	Saved        int
	NoAttachment int // fetched without a Content-Disposition header
	Failed       int
}
