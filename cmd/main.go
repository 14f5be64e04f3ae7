package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"attachmentCrawler/domain/models"
)

var (
	EnvPrefix = "ATTACHMENT_CRAWLER_"
	Seed      = pflag.StringP("seed", "s", models.DefaultSeedURL, "index page to collect attachment links from")
	Output    = pflag.StringP("output", "o", ".", "directory to save attachments in")
	Workers   = pflag.IntP("workers", "w", 1, "number of links to download at once (1 keeps page order)")
	Timeout   = pflag.DurationP("timeout", "t", 0, "per request timeout (0 for none)")
	UserAgent = pflag.String("user-agent", "", "user agent to send (default Go's)")
	SameHost  = pflag.Bool("same-host", false, "only download links on the seed page's host")
	LogLevel  = pflag.StringP("log-level", "L", "info", "log level (debug, info, warn, error)")
	Help      = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	parseEnv(EnvPrefix)
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	level, err := log.ParseLevel(*LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})

	ctx, cancel := listenForCancellationAndAddToContext()
	defer cancel()

	app, err := NewApp(AppConfig{
		Logger:    logger,
		SeedURL:   *Seed,
		OutputDir: *Output,
		SameHost:  *SameHost,
		FetcherConfig: FetcherConfig{
			Timeout:   *Timeout,
			UserAgent: *UserAgent,
		},
		DownloaderPoolConfig: DownloaderPoolConfig{
			DownloaderPoolSize: *Workers,
		},
	})
	if err != nil {
		logger.Fatal("failed to start", "err", err)
	}

	if _, err := app.Run(ctx); err != nil {
		if errors.Is(err, models.ErrFetch) || errors.Is(err, models.ErrDecode) {
			logger.Error("failed to read seed page", "seed", *Seed, "err", err)
		} else {
			logger.Error("run stopped", "err", err)
		}
		cancel()
		os.Exit(1)
	}
}

// parseEnv sets flags from PREFIX_FLAG_NAME environment variables before the command line is parsed.
func parseEnv(prefix string) {
	for _, env := range os.Environ() {
		k, v, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		s, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		n := strings.Map(func(r rune) rune {
			if r == '_' {
				return '-'
			}
			return unicode.ToLower(r)
		}, s)
		f := pflag.CommandLine.Lookup(n)
		if f == nil {
			fmt.Fprintf(pflag.CommandLine.Output(), "env %s: unknown flag --%s\n", k, n)
			continue
		}
		if err := f.Value.Set(v); err != nil {
			fmt.Fprintf(pflag.CommandLine.Output(), "env %s: flag --%s: invalid argument: %v\n", k, n, err)
			os.Exit(2)
		}
	}
}
