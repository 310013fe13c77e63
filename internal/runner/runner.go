// Package runner executes one inference run: every image (or image-text
// pair) for a (model, language, task, setting) cell, with checkpointing so
// interrupted runs resume where they stopped.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/prompts"
	"vlures-harness/internal/results"
	"vlures-harness/internal/vlm"

	"github.com/schollz/progressbar/v3"
)

const defaultBatchSize = 8

type Params struct {
	Key           benchmark.RunKey
	DataDir       string
	OutputDir     string
	CheckpointDir string

	// BatchSize bounds how many images share one request for image-only
	// tasks. Image-text tasks are always per item.
	BatchSize int

	// Quiet disables the progress bar (used by tests).
	Quiet bool
}

type Summary struct {
	Processed  int
	Skipped    int
	Failed     int
	OutputPath string
}

type Runner struct {
	VLM vlm.VLM
}

// Run processes all pending items for the run and writes the final output
// file. A checkpoint is written after every item (or batch) so a crashed run
// loses at most one request's worth of work.
func (r *Runner) Run(ctx context.Context, p Params) (Summary, error) {
	key := p.Key
	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	langDir := filepath.Join(p.DataDir, key.Language.Code())
	images, err := listImages(langDir)
	if err != nil {
		return Summary{}, err
	}

	checkpointPath := filepath.Join(p.CheckpointDir, key.CheckpointFile())
	set, err := results.Load(checkpointPath, key.Task, key.Setting.WithRationales())
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Skipped:    set.Len(),
		OutputPath: filepath.Join(p.OutputDir, key.OutputFile()),
	}
	if set.Len() > 0 {
		slog.Info("resuming from checkpoint", "run", key.String(), "processed", set.Len())
	}

	pending := make([]string, 0, len(images))
	for _, img := range images {
		if !set.Has(ImageID(img)) {
			pending = append(pending, img)
		}
	}

	system, err := prompts.SystemPrompt(key.Language)
	if err != nil {
		return Summary{}, err
	}

	var bar *progressbar.ProgressBar
	if !p.Quiet {
		bar = progressbar.NewOptions(len(pending),
			progressbar.OptionSetDescription("⏳ "+key.String()),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
	}

	if key.Task.RequiresText() {
		err = r.runImageText(ctx, p, system, pending, langDir, set, checkpointPath, &summary, bar)
	} else {
		err = r.runImageOnly(ctx, p, system, pending, langDir, batchSize, set, checkpointPath, &summary, bar)
	}
	if err != nil {
		return summary, err
	}

	if err := set.Save(summary.OutputPath); err != nil {
		return summary, err
	}
	return summary, nil
}

func (r *Runner) runImageText(ctx context.Context, p Params, system string, pending []string, langDir string, set *results.Set, checkpointPath string, summary *Summary, bar *progressbar.ProgressBar) error {
	for _, img := range pending {
		if bar != nil {
			bar.Add(1) //nolint:errcheck
		}

		id := ImageID(img)
		textPath := filepath.Join(langDir, "text"+id+".txt")
		textBytes, err := os.ReadFile(textPath)
		if err != nil {
			slog.Warn("text file not found, skipping image", "image", img, "path", textPath)
			summary.Failed++
			continue
		}

		prompt, err := prompts.Build(p.Key.Language, p.Key.Task, p.Key.Setting, strings.TrimSpace(string(textBytes)))
		if err != nil {
			return err
		}

		dataURL, err := vlm.EncodeImageFile(filepath.Join(langDir, img))
		if err != nil {
			slog.Warn("failed to encode image, skipping", "image", img, "error", err)
			summary.Failed++
			continue
		}

		response, err := r.VLM.Generate(ctx, vlm.Request{System: system, Prompt: prompt, Images: []string{dataURL}})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("inference failed, skipping image", "image", img, "error", err)
			summary.Failed++
			continue
		}

		set.Add(record(id, response, p.Key.Setting))
		summary.Processed++

		if err := set.Save(checkpointPath); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runImageOnly(ctx context.Context, p Params, system string, pending []string, langDir string, batchSize int, set *results.Set, checkpointPath string, summary *Summary, bar *progressbar.ProgressBar) error {
	prompt, err := prompts.Build(p.Key.Language, p.Key.Task, p.Key.Setting, "")
	if err != nil {
		return err
	}

	for start := 0; start < len(pending); start += batchSize {
		batch := pending[start:min(start+batchSize, len(pending))]

		var urls []string
		var ids []string
		for _, img := range batch {
			if bar != nil {
				bar.Add(1) //nolint:errcheck
			}
			dataURL, err := vlm.EncodeImageFile(filepath.Join(langDir, img))
			if err != nil {
				slog.Warn("failed to encode image, skipping", "image", img, "error", err)
				summary.Failed++
				continue
			}
			urls = append(urls, dataURL)
			ids = append(ids, ImageID(img))
		}
		if len(urls) == 0 {
			continue
		}

		response, err := r.VLM.Generate(ctx, vlm.Request{System: system, Prompt: prompt, Images: urls})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("inference failed, skipping batch", "first_image", batch[0], "error", err)
			summary.Failed += len(ids)
			continue
		}

		// A multi-image request yields one consolidated analysis; it is
		// assigned to every image in the batch.
		for _, id := range ids {
			set.Add(record(id, response, p.Key.Setting))
			summary.Processed++
		}

		if err := set.Save(checkpointPath); err != nil {
			return err
		}
	}
	return nil
}

func record(id, response string, setting benchmark.Setting) results.Record {
	if !setting.WithRationales() {
		return results.Record{ID: id, Analysis: strings.TrimSpace(response)}
	}
	analysis, rationale := prompts.SplitRationale(response)
	return results.Record{ID: id, Analysis: analysis, Rationale: rationale}
}

// ImageID extracts the numeric id from an image filename, e.g. "img_12.jpg"
// yields "12".
func ImageID(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	var digits strings.Builder
	for _, r := range base {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			images = append(images, entry.Name())
		}
	}

	sort.Slice(images, func(i, j int) bool {
		a, errA := strconv.Atoi(ImageID(images[i]))
		b, errB := strconv.Atoi(ImageID(images[j]))
		if errA != nil || errB != nil {
			return images[i] < images[j]
		}
		return a < b
	})
	return images, nil
}
