package sameDomainFilter

import (
	"net/url"

	"attachmentCrawler/domain/models"
)

// Filter only lets through links on the same host as the seed page, ignoring a leading www.
type Filter struct {
	seedHost string
}

func New(seedURL string) (*Filter, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return nil, err
	}
	f := &Filter{}
	f.seedHost = f.hostWithoutWWW(u.Hostname())
	return f, nil
}

func (f *Filter) ShouldFetch(link models.Link) bool {
	u, err := url.Parse(link.Href)
	if err != nil {
		return false
	}
	return f.seedHost == f.hostWithoutWWW(u.Hostname())
}

func (f Filter) hostWithoutWWW(host string) string {
	if len(host) > 4 && host[:4] == "www." {
		return host[4:]
	}
	return host
}
