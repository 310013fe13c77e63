// Package matrix expands a yaml experiment manifest into the cross product
// of languages, tasks, and settings and dispatches each cell in turn.
package matrix

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"vlures-harness/internal/benchmark"
)

// Manifest selects the experiment cells to run. Empty lists mean "all".
type Manifest struct {
	Languages []string `yaml:"languages"`
	Tasks     []int    `yaml:"tasks"`
	Settings  []string `yaml:"settings"`
}

// LoadManifest reads and validates a manifest file, filling defaults for
// omitted dimensions.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if len(m.Languages) == 0 {
		for _, lang := range benchmark.Languages {
			m.Languages = append(m.Languages, string(lang))
		}
	}
	if len(m.Tasks) == 0 {
		for t := benchmark.ObjectRecognition; t <= benchmark.VisualQuestionAnswering; t++ {
			m.Tasks = append(m.Tasks, int(t))
		}
	}
	if len(m.Settings) == 0 {
		for _, s := range benchmark.Settings {
			m.Settings = append(m.Settings, string(s))
		}
	}

	for _, lang := range m.Languages {
		if _, err := benchmark.ParseLanguage(lang); err != nil {
			return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	for _, task := range m.Tasks {
		if !benchmark.TaskID(task).Valid() {
			return Manifest{}, fmt.Errorf("manifest %s: task number %d out of range", path, task)
		}
	}
	for _, setting := range m.Settings {
		if _, err := benchmark.ParseSetting(setting); err != nil {
			return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
		}
	}

	return m, nil
}

// Cells returns the cross product in manifest order: languages outermost,
// settings innermost.
func (m Manifest) Cells() []Cell {
	var cells []Cell
	for _, lang := range m.Languages {
		for _, task := range m.Tasks {
			for _, setting := range m.Settings {
				cells = append(cells, Cell{Language: lang, Task: task, Setting: setting})
			}
		}
	}
	return cells
}

type Cell struct {
	Language string
	Task     int
	Setting  string
}

type Result struct {
	Cell Cell
	Err  error
}

// Dispatch runs one experiment cell; it matches dispatch.Dispatcher.Run.
type Dispatch func(ctx context.Context, language, taskNumber, setting string) error

// Runner executes every cell sequentially. A failing cell is recorded and
// the run continues, so one bad experiment never sinks a whole sweep.
type Runner struct {
	Dispatch Dispatch
}

func (r *Runner) Run(ctx context.Context, m Manifest) ([]Result, error) {
	cells := m.Cells()
	results := make([]Result, 0, len(cells))

	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		err := r.Dispatch(ctx, cell.Language, strconv.Itoa(cell.Task), cell.Setting)
		if err != nil {
			slog.Error("experiment cell failed", "language", cell.Language, "task", cell.Task, "setting", cell.Setting, "error", err)
		}
		results = append(results, Result{Cell: cell, Err: err})
	}

	return results, nil
}

// Failed counts the cells that errored.
func Failed(results []Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
