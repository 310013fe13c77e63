// The report command aggregates judge scores into a markdown summary table,
// and can also list the recorded run history.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vlures-harness/internal/config"
	"vlures-harness/internal/database"
	"vlures-harness/internal/report"
	"vlures-harness/internal/storage"
)

func main() {
	modelFlag := flag.String("model", "", "model to report on (default: VLM_MODEL)")
	outFlag := flag.String("out", "", "output file (default: stdout)")
	runsFlag := flag.Bool("runs", false, "list recorded inference runs instead of scores")
	fromArchiveFlag := flag.Bool("from-archive", false, "restore score files from the results archive first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *outFlag, err)
		}
		defer f.Close()
		out = f
	}

	if *runsFlag {
		db, err := database.Connect(cfg.RunDBPath)
		if err != nil {
			log.Fatalf("Failed to open run database: %v", err)
		}
		runs, err := database.NewStore(db).ListInferenceRuns(context.Background())
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		if err := report.RenderRuns(out, runs); err != nil {
			log.Fatalf("Failed to render run history: %v", err)
		}
		return
	}

	model := *modelFlag
	if model == "" {
		model = cfg.VLMModel
	}

	if *fromArchiveFlag {
		archiveCfg := storage.ArchiveConfig{
			Bucket:   cfg.ResultsBucket,
			LocalDir: cfg.ResultsArchiveDir,
			S3: storage.S3ClientConfig{
				Endpoint:        cfg.S3EndpointURL,
				Region:          cfg.S3Region,
				AccessKeyID:     cfg.S3AccessKeyID,
				SecretAccessKey: cfg.S3SecretAccessKey,
			},
		}
		if !archiveCfg.Enabled() {
			log.Fatalf("RESULTS_BUCKET must be set to restore from the archive")
		}
		archive, err := storage.NewArchive(archiveCfg)
		if err != nil {
			log.Fatalf("Failed to create results archive: %v", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := archive.DownloadDir(ctx, cfg.ResultsBucket, "evaluation_scores", cfg.EvalOutputDir, true); err != nil {
			log.Fatalf("Failed to restore scores from archive: %v", err)
		}
		log.Printf("Restored score files from %s/evaluation_scores", cfg.ResultsBucket)
	}

	cells, err := report.Collect(cfg.EvalOutputDir, model)
	if err != nil {
		log.Fatalf("Failed to collect scores: %v", err)
	}

	if err := report.Render(out, model, cells); err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
}
