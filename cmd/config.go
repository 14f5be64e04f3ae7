package main

import "time"

type AppConfig struct {
	Logger    Logger
	SeedURL   string
	OutputDir string
	SameHost  bool
	FetcherConfig
	DownloaderPoolConfig
}

type FetcherConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type DownloaderPoolConfig struct {
	DownloaderPoolSize int
}
