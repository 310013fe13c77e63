// The dispatch command validates an experiment triple and hands it off to
// the matching inference script.
//
// Usage:
//
//	dispatch <language> <task_number> <setting>
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vlures-harness/internal/config"
	"vlures-harness/internal/dispatch"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dispatch <language> <task_number> <setting>")
	fmt.Fprintln(os.Stderr, "  language:    English | Japanese | Swahili | Urdu")
	fmt.Fprintln(os.Stderr, "  task_number: 1-8")
	fmt.Fprintln(os.Stderr, "  setting:     zeroshot_no_rationales | zeroshot_with_rationales | oneshot_no_rationales | oneshot_with_rationales")
}

func main() {
	args := os.Args[1:]
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher := &dispatch.Dispatcher{
		ScriptsDir: cfg.ScriptsDir,
		Credential: cfg.OpenAIAPIKey,
	}

	err = dispatcher.Run(ctx, args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dispatch: %v\n", err)
	}
	os.Exit(dispatch.ExitCode(err))
}
