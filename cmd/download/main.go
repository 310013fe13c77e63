// The download command mirrors the VLURes dataset into the local data
// directory, one subdirectory per language.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/config"
	"vlures-harness/internal/dataset"
)

func main() {
	languageFlag := flag.String("language", "", "single language to download (default: all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	languages := benchmark.Languages
	if *languageFlag != "" {
		lang, err := benchmark.ParseLanguage(*languageFlag)
		if err != nil {
			log.Fatalf("Invalid language: %v", err)
		}
		languages = []benchmark.Language{lang}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	downloader := dataset.NewDownloader(cfg.DatasetRepo, cfg.DataDir, cfg.DownloadWorkers)

	for _, lang := range languages {
		summary, err := downloader.Download(ctx, lang)
		if err != nil {
			log.Fatalf("Failed to download %s: %v", lang, err)
		}
		log.Printf("%s: %d images (%d new, %d existing, %d failed)",
			lang, summary.Total, summary.Downloaded, summary.Skipped, summary.Failed)
	}
}
