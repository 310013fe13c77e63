package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlures-harness/internal/benchmark"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

// fakeHub serves a datasets-server /rows endpoint plus the images it links to.
type fakeHub struct {
	server    *httptest.Server
	texts     []string
	imageHits map[int]int
	corrupt   map[int]bool
	png       []byte
}

func newFakeHub(t *testing.T, texts []string) *fakeHub {
	hub := &fakeHub{texts: texts, imageHits: map[int]int{}, corrupt: map[int]bool{}, png: pngBytes(t)}

	mux := http.NewServeMux()
	mux.HandleFunc("/rows", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		length, _ := strconv.Atoi(r.URL.Query().Get("length"))

		resp := map[string]any{"num_rows_total": len(hub.texts)}
		var rows []map[string]any
		for i := offset; i < len(hub.texts) && i < offset+length; i++ {
			rows = append(rows, map[string]any{
				"row_idx": i,
				"row": map[string]any{
					"image": map[string]any{"src": fmt.Sprintf("%s/images/%d", hub.server.URL, i+1)},
					"text":  hub.texts[i],
				},
			})
		}
		resp["rows"] = rows
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/images/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(filepath.Base(r.URL.Path))
		hub.imageHits[id]++
		if hub.corrupt[id] {
			_, _ = w.Write([]byte("not an image"))
			return
		}
		_, _ = w.Write(hub.png)
	})

	hub.server = httptest.NewServer(mux)
	t.Cleanup(hub.server.Close)
	return hub
}

func newTestDownloader(hub *fakeHub, dataDir string) *Downloader {
	return NewDownloader("atamiles/VLURes", dataDir, 4, WithBaseURL(hub.server.URL), WithQuiet())
}

func TestDownloadMirrorsSplit(t *testing.T) {
	hub := newFakeHub(t, []string{"article one", "article two", "article three"})
	dataDir := t.TempDir()

	summary, err := newTestDownloader(hub, dataDir).Download(context.Background(), benchmark.English)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 3, Downloaded: 3}, summary)
	for i := 1; i <= 3; i++ {
		assert.FileExists(t, filepath.Join(dataDir, "En", fmt.Sprintf("%d.jpg", i)))
		text, err := os.ReadFile(filepath.Join(dataDir, "En", fmt.Sprintf("text%d.txt", i)))
		require.NoError(t, err)
		assert.Contains(t, string(text), "article")
	}
}

func TestDownloadSkipsExistingImages(t *testing.T) {
	hub := newFakeHub(t, []string{"one", "two"})
	dataDir := t.TempDir()
	dl := newTestDownloader(hub, dataDir)

	_, err := dl.Download(context.Background(), benchmark.Swahili)
	require.NoError(t, err)

	summary, err := dl.Download(context.Background(), benchmark.Swahili)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 2, Skipped: 2}, summary)
	assert.Equal(t, 1, hub.imageHits[1], "verified image must not be re-downloaded")
}

func TestDownloadRemovesCorruptImages(t *testing.T) {
	hub := newFakeHub(t, []string{"one", "two"})
	hub.corrupt[2] = true
	dataDir := t.TempDir()

	summary, err := newTestDownloader(hub, dataDir).Download(context.Background(), benchmark.Urdu)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 2, Downloaded: 1, Failed: 1}, summary)
	assert.FileExists(t, filepath.Join(dataDir, "Ur", "1.jpg"))
	assert.NoFileExists(t, filepath.Join(dataDir, "Ur", "2.jpg"))
	// The text file is written regardless so the row can be retried.
	assert.FileExists(t, filepath.Join(dataDir, "Ur", "text2.txt"))
}

func TestDownloadPagesThroughLargeSplits(t *testing.T) {
	texts := make([]string, rowsPerPage+5)
	for i := range texts {
		texts[i] = fmt.Sprintf("article %d", i+1)
	}
	hub := newFakeHub(t, texts)
	dataDir := t.TempDir()

	summary, err := newTestDownloader(hub, dataDir).Download(context.Background(), benchmark.Japanese)
	require.NoError(t, err)
	assert.Equal(t, rowsPerPage+5, summary.Total)
	assert.Equal(t, rowsPerPage+5, summary.Downloaded)
	assert.FileExists(t, filepath.Join(dataDir, "Jp", fmt.Sprintf("%d.jpg", rowsPerPage+5)))
}
