package report

import (
	"fmt"
	"io"

	"vlures-harness/internal/database"
)

// RenderRuns writes the run history as a markdown table, newest first (the
// order the store lists them in).
func RenderRuns(w io.Writer, runs []database.InferenceRun) error {
	if _, err := fmt.Fprintf(w, "# Run history\n\n"); err != nil {
		return err
	}

	table := createStandardTable([]string{"Started", "Model", "Language", "Task", "Setting", "Status", "Processed", "Skipped", "Failed"}, w)
	for _, run := range runs {
		row := []string{
			run.CreationTime.Format("2006-01-02 15:04:05"),
			run.Model,
			run.Language,
			fmt.Sprintf("%d", run.Task),
			run.Setting,
			run.Status,
			fmt.Sprintf("%d", run.Processed),
			fmt.Sprintf("%d", run.Skipped),
			fmt.Sprintf("%d", run.Failed),
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	_, err := fmt.Fprintln(w)
	return err
}
