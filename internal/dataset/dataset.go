// Package dataset mirrors the VLURes dataset from the Hugging Face hub into
// the local data directory, fetching rows through the datasets-server API and
// downloading images with a bounded worker pool.
package dataset

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/pool"
)

const (
	datasetsServerURL = "https://datasets-server.huggingface.co"
	rowsPerPage       = 100
)

type Downloader struct {
	client  *resty.Client
	repo    string
	dataDir string
	workers int
	quiet   bool
}

type Option func(*Downloader)

// WithBaseURL points the downloader at an alternate datasets-server, used in
// tests.
func WithBaseURL(url string) Option {
	return func(d *Downloader) { d.client.SetBaseURL(url) }
}

func WithQuiet() Option {
	return func(d *Downloader) { d.quiet = true }
}

func NewDownloader(repo, dataDir string, workers int, opts ...Option) *Downloader {
	if workers < 1 {
		workers = 1
	}
	d := &Downloader{
		client:  resty.New().SetBaseURL(datasetsServerURL),
		repo:    repo,
		dataDir: dataDir,
		workers: workers,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type rowsResponse struct {
	Rows []struct {
		RowIdx int `json:"row_idx"`
		Row    struct {
			Image struct {
				Src string `json:"src"`
			} `json:"image"`
			Text string `json:"text"`
		} `json:"row"`
	} `json:"rows"`
	NumRowsTotal int `json:"num_rows_total"`
}

type item struct {
	id       int
	imageURL string
	text     string
}

// Summary reports the outcome of mirroring one language split.
type Summary struct {
	Total      int
	Downloaded int
	Skipped    int
	Failed     int
}

// Download mirrors one language's split into dataDir/<code>/, writing
// "<id>.jpg" and "text<id>.txt" per row. Existing verified images are kept.
func (d *Downloader) Download(ctx context.Context, language benchmark.Language) (Summary, error) {
	var summary Summary

	targetDir := filepath.Join(d.dataDir, language.Code())
	if err := os.MkdirAll(targetDir, 0777); err != nil {
		return summary, fmt.Errorf("failed to create %s: %w", targetDir, err)
	}

	items, err := d.fetchRows(ctx, language)
	if err != nil {
		return summary, err
	}
	summary.Total = len(items)

	var bar *progressbar.ProgressBar
	if !d.quiet {
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetDescription(fmt.Sprintf("downloading %s", language)),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	queue := make(chan item, len(items))
	for _, it := range items {
		queue <- it
	}
	close(queue)

	completed := make(chan pool.Completed[bool], len(items))
	pool.Run(func(it item) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return d.fetchItem(ctx, targetDir, it)
	}, queue, completed, d.workers)

	for done := range completed {
		if bar != nil {
			_ = bar.Add(1)
		}
		switch {
		case done.Error != nil:
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			summary.Failed++
			slog.Warn("download failed", "language", language, "error", done.Error)
		case done.Result:
			summary.Downloaded++
		default:
			summary.Skipped++
		}
	}

	slog.Info("dataset mirrored", "language", language, "total", summary.Total,
		"downloaded", summary.Downloaded, "skipped", summary.Skipped, "failed", summary.Failed)
	return summary, nil
}

// fetchRows pages through the split and collects every row's image URL and
// article text.
func (d *Downloader) fetchRows(ctx context.Context, language benchmark.Language) ([]item, error) {
	var items []item
	for offset := 0; ; offset += rowsPerPage {
		var page rowsResponse
		res, err := d.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"dataset": d.repo,
				"config":  string(language),
				"split":   "train",
				"offset":  strconv.Itoa(offset),
				"length":  strconv.Itoa(rowsPerPage),
			}).
			SetResult(&page).
			Get("/rows")
		if err != nil {
			return nil, fmt.Errorf("failed to list rows for %s: %w", language, err)
		}
		if !res.IsSuccess() {
			return nil, fmt.Errorf("datasets server returned %d for %s: %s", res.StatusCode(), language, res.String())
		}

		for _, row := range page.Rows {
			items = append(items, item{
				id:       row.RowIdx + 1, // image ids are 1-based
				imageURL: row.Row.Image.Src,
				text:     row.Row.Text,
			})
		}

		if offset+rowsPerPage >= page.NumRowsTotal || len(page.Rows) == 0 {
			return items, nil
		}
	}
}

// fetchItem writes the row's text file and downloads its image, reporting
// whether the image was actually fetched (false means it already existed).
func (d *Downloader) fetchItem(ctx context.Context, targetDir string, it item) (bool, error) {
	textPath := filepath.Join(targetDir, fmt.Sprintf("text%d.txt", it.id))
	if err := os.WriteFile(textPath, []byte(it.text), 0666); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", textPath, err)
	}

	imagePath := filepath.Join(targetDir, fmt.Sprintf("%d.jpg", it.id))
	if verifyImage(imagePath) == nil {
		return false, nil
	}

	res, err := d.client.R().SetContext(ctx).SetOutput(imagePath).Get(it.imageURL)
	if err != nil {
		return false, fmt.Errorf("failed to download image %d: %w", it.id, err)
	}
	if !res.IsSuccess() {
		return false, fmt.Errorf("image %d: server returned %d", it.id, res.StatusCode())
	}

	if err := verifyImage(imagePath); err != nil {
		// A truncated or non-image body is worse than a missing file.
		_ = os.Remove(imagePath)
		return false, fmt.Errorf("image %d failed verification: %w", it.id, err)
	}
	return true, nil
}

func verifyImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("undecodable image %s: %w", path, err)
	}
	return nil
}
