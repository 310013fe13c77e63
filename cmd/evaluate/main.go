// The evaluate command scores a model's inference outputs with the Gemini
// judge, writing one scores file per inference output.
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
	"vlures-harness/internal/database"
	"vlures-harness/internal/judge"
	"vlures-harness/internal/storage"
)

const defaultScore = 50 // assigned when the judge fails repeatedly

func main() {
	modelFlag := flag.String("model", "", "model whose outputs to evaluate (default: VLM_MODEL)")
	languageFlag := flag.String("language", "", "language to evaluate (English, Japanese, Swahili, Urdu)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatalf("GOOGLE_API_KEY is not set")
	}

	language, err := benchmark.ParseLanguage(*languageFlag)
	if err != nil {
		log.Fatalf("Invalid language: %v", err)
	}

	model := *modelFlag
	if model == "" {
		model = cfg.VLMModel
	}

	db, err := database.Connect(cfg.RunDBPath)
	if err != nil {
		log.Fatalf("Failed to open run database: %v", err)
	}
	store := database.NewStore(db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gemini, err := judge.NewGemini(ctx, cfg.GoogleAPIKey, cfg.JudgeModel)
	if err != nil {
		log.Fatalf("Failed to create judge: %v", err)
	}

	runID, err := store.StartEvaluationRun(ctx, model, language)
	if err != nil {
		log.Fatalf("Failed to record evaluation: %v", err)
	}

	evaluator := &judge.Evaluator{
		Judge:        gemini,
		Workers:      cfg.JudgeWorkers,
		MaxRetries:   cfg.MaxRetries,
		RetryDelay:   cfg.RetryDelay,
		DefaultScore: defaultScore,
	}

	summaries, err := evaluator.EvaluateAll(ctx, cfg.OutputDir, cfg.EvalOutputDir, cfg.CheckpointDir, model, language)
	if err != nil {
		if dbErr := store.FailEvaluationRun(context.Background(), runID, err); dbErr != nil {
			log.Printf("Failed to record evaluation failure: %v", dbErr)
		}
		log.Fatalf("Evaluation failed: %v", err)
	}

	scored, defaulted := 0, 0
	scorePaths := make([]string, 0, len(summaries))
	for _, s := range summaries {
		scored += s.Scored
		defaulted += s.Defaulted
		scorePaths = append(scorePaths, s.OutputPath)
	}

	if err := store.CompleteEvaluationRun(ctx, runID, len(summaries), scored, defaulted); err != nil {
		log.Printf("Failed to record evaluation completion: %v", err)
	}
	log.Printf("Evaluated %d files for %s/%s: %d items scored, %d defaulted",
		len(summaries), model, language, scored, defaulted)

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
	if archiveCfg.Enabled() {
		archive, err := storage.NewArchive(archiveCfg)
		if err != nil {
			log.Fatalf("Failed to create results archive: %v", err)
		}
		if err := storage.ArchiveFiles(ctx, archive, cfg.ResultsBucket, "evaluation_scores", scorePaths...); err != nil {
			log.Fatalf("Failed to archive scores: %v", err)
		}
		log.Printf("Archived %d score files to %s/evaluation_scores", len(scorePaths), cfg.ResultsBucket)
	}
}
