package main

import (
	"context"
	"fmt"

	"attachmentCrawler/domain/adapters/FIFOqueue"
	"attachmentCrawler/domain/adapters/attemptPrinter"
	"attachmentCrawler/domain/adapters/fileWriter"
	"attachmentCrawler/domain/adapters/httpSchemeFilter"
	"attachmentCrawler/domain/adapters/sameDomainFilter"
	"attachmentCrawler/domain/adapters/urlFetcherExtractor"
	"attachmentCrawler/domain/downloader"
	"attachmentCrawler/domain/downloaderPool"
	storeHook "attachmentCrawler/domain/hooks/storeDownload"
	"attachmentCrawler/domain/models"
	"attachmentCrawler/domain/pageLinkDownloader"
	"attachmentCrawler/domain/store"
)

type Logger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type App struct {
	logger             Logger
	pageLinkDownloader *pageLinkDownloader.PageLinkDownloader
	printer            *attemptPrinter.AttemptPrinter
	store              *store.DownloadStore
}

func NewApp(cfg AppConfig) (*App, error) {
	fetcherExtractor := urlFetcherExtractor.NewHTTPFetcherExtractor(cfg.Timeout, cfg.UserAgent)

	sink, err := fileWriter.New(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	filters := []downloaderPool.LinkFilter{httpSchemeFilter.New()}
	if cfg.SameHost {
		filter, err := sameDomainFilter.New(cfg.SeedURL)
		if err != nil {
			return nil, fmt.Errorf("parse seed url: %w", err)
		}
		filters = append(filters, filter)
	}

	downloads := store.NewDownloadStore()
	printer := attemptPrinter.New(cfg.Logger)

	pool := downloaderPool.New(
		cfg.Logger,
		cfg.DownloaderPoolSize,
		FIFOqueue.New(),
		downloader.New(fetcherExtractor, sink),
		printer,
		filters,
		storeHook.New(downloads, cfg.Logger).Store,
	)

	return &App{
		logger:             cfg.Logger,
		pageLinkDownloader: pageLinkDownloader.New(cfg.Logger, cfg.SeedURL, fetcherExtractor, pool),
		printer:            printer,
		store:              downloads,
	}, nil
}

func (a *App) Run(ctx context.Context) (models.Summary, error) {
	summary, err := a.pageLinkDownloader.Run(ctx)
	if err != nil {
		return summary, err
	}
	for _, url := range a.store.URLs() {
		path, _ := a.store.Saved(url)
		a.logger.Debugf("saved %s as %s", url, path)
	}
	a.printer.PrintSummary(summary)
	return summary, nil
}
