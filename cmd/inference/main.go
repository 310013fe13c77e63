// The inference command runs one experiment cell against the VLM, writing
// the responses as a JSON output file and recording the run in the history
// database.
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
	"vlures-harness/internal/runner"
	"vlures-harness/internal/storage"
	"vlures-harness/internal/vlm"
)

func main() {
	languageFlag := flag.String("language", "", "language to run (English, Japanese, Swahili, Urdu)")
	taskFlag := flag.Int("task", 0, "task number (1-8)")
	settingFlag := flag.String("setting", string(benchmark.ZeroshotNoRationales), "experiment setting")
	modelFlag := flag.String("model", "", "VLM model name (default: VLM_MODEL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatalf("OPENAI_API_KEY is not set")
	}

	language, err := benchmark.ParseLanguage(*languageFlag)
	if err != nil {
		log.Fatalf("Invalid language: %v", err)
	}
	if !benchmark.TaskID(*taskFlag).Valid() {
		log.Fatalf("Invalid task number %d, must be 1-8", *taskFlag)
	}
	setting, err := benchmark.ParseSetting(*settingFlag)
	if err != nil {
		log.Fatalf("Invalid setting: %v", err)
	}

	model := *modelFlag
	if model == "" {
		model = cfg.VLMModel
	}

	key := benchmark.RunKey{
		Model:    model,
		Language: language,
		Task:     benchmark.TaskID(*taskFlag),
		Setting:  setting,
	}

	db, err := database.Connect(cfg.RunDBPath)
	if err != nil {
		log.Fatalf("Failed to open run database: %v", err)
	}
	store := database.NewStore(db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runID, err := store.StartInferenceRun(ctx, key)
	if err != nil {
		log.Fatalf("Failed to record run: %v", err)
	}

	client := &vlm.Retrying{
		Inner:      vlm.NewOpenAI(model, cfg.Temperature, cfg.MaxTokens),
		MaxRetries: cfg.MaxRetries,
		Delay:      cfg.RetryDelay,
	}

	r := &runner.Runner{VLM: client}
	summary, err := r.Run(ctx, runner.Params{
		Key:           key,
		DataDir:       cfg.DataDir,
		OutputDir:     cfg.OutputDir,
		CheckpointDir: cfg.CheckpointDir,
		BatchSize:     cfg.BatchSize,
	})
	if err != nil {
		if dbErr := store.FailInferenceRun(context.Background(), runID, err); dbErr != nil {
			log.Printf("Failed to record run failure: %v", dbErr)
		}
		log.Fatalf("Inference run %s failed: %v", key, err)
	}

	if err := store.CompleteInferenceRun(ctx, runID, summary.OutputPath, summary.Processed, summary.Skipped, summary.Failed); err != nil {
		log.Printf("Failed to record run completion: %v", err)
	}
	log.Printf("Run %s complete: %d processed, %d skipped, %d failed -> %s",
		key, summary.Processed, summary.Skipped, summary.Failed, summary.OutputPath)

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
		if err := storage.ArchiveFiles(ctx, archive, cfg.ResultsBucket, "inference_outputs", summary.OutputPath); err != nil {
			log.Fatalf("Failed to archive %s: %v", summary.OutputPath, err)
		}
		log.Printf("Archived %s to %s/inference_outputs", summary.OutputPath, cfg.ResultsBucket)
	}
}
