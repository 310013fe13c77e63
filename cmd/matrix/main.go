// The matrix command runs a sweep of experiment cells described by a yaml
// manifest, dispatching each cell to its inference script.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vlures-harness/internal/config"
	"vlures-harness/internal/dispatch"
	"vlures-harness/internal/matrix"
)

func main() {
	manifestFlag := flag.String("manifest", "matrix.yaml", "experiment manifest file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	manifest, err := matrix.LoadManifest(*manifestFlag)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher := &dispatch.Dispatcher{
		ScriptsDir: cfg.ScriptsDir,
		Credential: cfg.OpenAIAPIKey,
	}

	runner := &matrix.Runner{Dispatch: dispatcher.Run}
	results, err := runner.Run(ctx, manifest)
	if err != nil {
		log.Fatalf("Sweep aborted: %v", err)
	}

	failed := matrix.Failed(results)
	log.Printf("Sweep complete: %d cells, %d failed", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
