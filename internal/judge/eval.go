package judge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/pool"
	"vlures-harness/internal/results"
)

// Evaluator scores inference output files with a pool of judge workers,
// checkpointing progress so interrupted evaluations resume cheaply.
type Evaluator struct {
	Judge Judge

	Workers         int
	MaxRetries      int
	RetryDelay      time.Duration
	DefaultScore    float64 // assigned when all judge attempts fail
	CheckpointEvery int
}

func (e *Evaluator) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return 10
}

func (e *Evaluator) checkpointEvery() int {
	if e.CheckpointEvery > 0 {
		return e.CheckpointEvery
	}
	return 20
}

// FileSummary reports what happened while evaluating one inference output.
type FileSummary struct {
	Key        benchmark.RunKey
	Scored     int
	Skipped    int
	Defaulted  int
	OutputPath string
}

type judgeItem struct {
	id       string
	response string
}

type judgeVerdict struct {
	id        string
	score     float64
	defaulted bool
}

// EvaluateAll discovers inference outputs for a model and language under
// inputDir and evaluates each one in turn.
func (e *Evaluator) EvaluateAll(ctx context.Context, inputDir, evalDir, ckptDir, model string, language benchmark.Language) ([]FileSummary, error) {
	pattern := filepath.Join(inputDir, fmt.Sprintf("%s_%s_task*.json", model, language))
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list inference outputs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no inference outputs match %s", pattern)
	}

	var summaries []FileSummary
	for _, path := range paths {
		key, err := benchmark.ParseOutputFilename(path)
		if err != nil {
			slog.Warn("skipping unrecognized output file", "path", path, "error", err)
			continue
		}
		summary, err := e.EvaluateFile(ctx, key, path, evalDir, ckptDir)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// EvaluateFile judges every response in one inference output file, writes
// "scores_<name>.json" under evalDir, and removes the checkpoint on success.
func (e *Evaluator) EvaluateFile(ctx context.Context, key benchmark.RunKey, inputPath, evalDir, ckptDir string) (FileSummary, error) {
	summary := FileSummary{
		Key:        key,
		OutputPath: filepath.Join(evalDir, key.ScoresFile()),
	}

	set, err := results.Load(inputPath, key.Task, key.Setting.WithRationales())
	if err != nil {
		return summary, err
	}

	ckptPath := filepath.Join(ckptDir, key.ScoresCheckpointFile())
	scores, err := LoadScores(ckptPath)
	if err != nil {
		return summary, err
	}
	summary.Skipped = len(scores)

	queue := make(chan judgeItem, set.Len())
	for _, id := range set.IDs() {
		if _, done := scores[id]; done {
			continue
		}
		rec, _ := set.Get(id)
		queue <- judgeItem{id: id, response: rec.Analysis}
	}
	close(queue)

	completed := make(chan pool.Completed[judgeVerdict], len(queue))
	pool.Run(func(item judgeItem) (judgeVerdict, error) {
		return e.scoreOne(ctx, key, item)
	}, queue, completed, e.workers())

	sinceCheckpoint := 0
	for verdict := range completed {
		if verdict.Error != nil {
			// Keep partial progress so a rerun resumes here.
			if saveErr := scores.Save(ckptPath); saveErr != nil {
				return summary, saveErr
			}
			return summary, verdict.Error
		}
		scores[verdict.Result.id] = Score{Score: verdict.Result.score}
		if verdict.Result.defaulted {
			summary.Defaulted++
		}
		summary.Scored++

		sinceCheckpoint++
		if sinceCheckpoint >= e.checkpointEvery() {
			if err := scores.Save(ckptPath); err != nil {
				return summary, err
			}
			sinceCheckpoint = 0
		}
	}

	if err := ctx.Err(); err != nil {
		// Keep the checkpoint so a rerun picks up where we stopped.
		if saveErr := scores.Save(ckptPath); saveErr != nil {
			return summary, saveErr
		}
		return summary, err
	}

	if err := scores.Save(summary.OutputPath); err != nil {
		return summary, err
	}
	if err := os.Remove(ckptPath); err != nil && !os.IsNotExist(err) {
		return summary, fmt.Errorf("failed to remove checkpoint %s: %w", ckptPath, err)
	}

	slog.Info("evaluated inference output", "run", key.String(), "scored", summary.Scored, "skipped", summary.Skipped, "defaulted", summary.Defaulted)
	return summary, nil
}

// scoreOne retries the judge a bounded number of times and falls back to the
// default score so one stubborn response never stalls a whole evaluation.
func (e *Evaluator) scoreOne(ctx context.Context, key benchmark.RunKey, item judgeItem) (judgeVerdict, error) {
	prompt := BuildPrompt(key.Task, key.Language, item.response)

	var lastErr error
	for attempt := 0; attempt <= e.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return judgeVerdict{}, err
		}
		score, err := e.Judge.Score(ctx, prompt)
		if err == nil {
			return judgeVerdict{id: item.id, score: score}, nil
		}
		lastErr = err
		if attempt < e.MaxRetries && e.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return judgeVerdict{}, ctx.Err()
			case <-time.After(e.RetryDelay):
			}
		}
	}

	slog.Warn("judge failed, assigning default score", "run", key.String(), "id", item.id, "error", lastErr)
	return judgeVerdict{id: item.id, score: e.DefaultScore, defaulted: true}, nil
}
