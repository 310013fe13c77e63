// Package report aggregates judge scores into per-experiment summary
// statistics and renders them as markdown tables.
package report

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/judge"
)

// Cell summarizes the judge scores for one (model, language, task, setting)
// experiment.
type Cell struct {
	Key    benchmark.RunKey
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// Aggregate computes a cell's statistics from one score set.
func Aggregate(key benchmark.RunKey, scores judge.ScoreSet) Cell {
	cell := Cell{Key: key, Count: len(scores)}
	if cell.Count == 0 {
		return cell
	}

	cell.Min = math.Inf(1)
	cell.Max = math.Inf(-1)

	var sum float64
	for _, s := range scores {
		sum += s.Score
		cell.Min = math.Min(cell.Min, s.Score)
		cell.Max = math.Max(cell.Max, s.Score)
	}
	cell.Mean = sum / float64(cell.Count)

	var sqDiff float64
	for _, s := range scores {
		d := s.Score - cell.Mean
		sqDiff += d * d
	}
	cell.StdDev = math.Sqrt(sqDiff / float64(cell.Count))

	return cell
}

// Collect loads every score file for a model under evalDir and aggregates
// each into a cell, ordered by language, task, then setting.
func Collect(evalDir, model string) ([]Cell, error) {
	paths, err := filepath.Glob(filepath.Join(evalDir, fmt.Sprintf("scores_%s_*.json", model)))
	if err != nil {
		return nil, fmt.Errorf("failed to list score files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no score files for model %s under %s", model, evalDir)
	}

	var cells []Cell
	for _, path := range paths {
		key, err := benchmark.ParseOutputFilename(path)
		if err != nil {
			return nil, err
		}
		scores, err := judge.LoadScores(path)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Aggregate(key, scores))
	}

	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i].Key, cells[j].Key
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		if a.Task != b.Task {
			return a.Task < b.Task
		}
		return a.Setting < b.Setting
	})
	return cells, nil
}

// Render writes the cells as a markdown table.
func Render(w io.Writer, model string, cells []Cell) error {
	if _, err := fmt.Fprintf(w, "# VLURes scores: %s\n\n", model); err != nil {
		return err
	}

	table := createStandardTable([]string{"Language", "Task", "Setting", "Items", "Mean", "Min", "Max", "StdDev"}, w)
	for _, cell := range cells {
		row := []string{
			string(cell.Key.Language),
			fmt.Sprintf("%d. %s", cell.Key.Task, cell.Key.Task.Name()),
			string(cell.Key.Setting),
			fmt.Sprintf("%d", cell.Count),
			fmt.Sprintf("%.2f", cell.Mean),
			fmt.Sprintf("%.1f", cell.Min),
			fmt.Sprintf("%.1f", cell.Max),
			fmt.Sprintf("%.2f", cell.StdDev),
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	_, err := fmt.Fprintln(w)
	return err
}
