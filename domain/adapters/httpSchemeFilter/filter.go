package httpSchemeFilter

import (
	"strings"

	"attachmentCrawler/domain/models"
)

// Prefix is matched literally and case-sensitively, so https and relative links are left alone.
const Prefix = "http:"

type Filter struct {
}

func New() *Filter {
	return &Filter{}
}

func (f *Filter) ShouldFetch(link models.Link) bool {
	return strings.HasPrefix(link.Href, Prefix)
}
