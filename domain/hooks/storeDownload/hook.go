package storeHook

import (
	"context"

	"attachmentCrawler/domain/models"
)

type Store interface {
	Add(url, path string) error
}

type Logger interface {
	Errorf(format string, args ...interface{})
}

type StoreHook struct {
	store  Store
	logger Logger
}

func New(store Store, logger Logger) *StoreHook {
	return &StoreHook{
		store:  store,
		logger: logger,
	}
}

func (h *StoreHook) Store(ctx context.Context, attempt models.DownloadAttempt) {
	if err := h.store.Add(attempt.Link.Href, attempt.Path); err != nil {
		h.logger.Errorf("Error storing download: %s", err)
	}
}
