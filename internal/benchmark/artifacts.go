package benchmark

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Artifact filename conventions shared by the inference runner, the judge,
// and the reporter. Everything downstream keys off these names, so they are
// centralized here.

// RunKey identifies a single (model, language, task, setting) experiment cell.
type RunKey struct {
	Model    string
	Language Language
	Task     TaskID
	Setting  Setting
}

func (k RunKey) String() string {
	return fmt.Sprintf("%s_%s_task%d_%s", k.Model, k.Language, k.Task, k.Setting)
}

// OutputFile is the final inference output for the run, e.g.
// "gpt-4o_English_task1_zeroshot_no_rationales.json".
func (k RunKey) OutputFile() string {
	return k.String() + ".json"
}

// CheckpointFile holds intermediate inference results for resumption.
func (k RunKey) CheckpointFile() string {
	return "ckpt_" + k.OutputFile()
}

// ScoresFile is the judge output for the run's inference output.
func (k RunKey) ScoresFile() string {
	return "scores_" + k.OutputFile()
}

// ScoresCheckpointFile holds intermediate judge scores for resumption.
func (k RunKey) ScoresCheckpointFile() string {
	return "ckpt_scores_" + k.OutputFile()
}

var taskPattern = regexp.MustCompile(`task(\d+)`)

// ParseOutputFilename recovers the run key from an inference output filename.
// It accepts a bare filename or a full path, with or without the "scores_"
// prefix the judge adds.
func ParseOutputFilename(path string) (RunKey, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimPrefix(name, "scores_")
	name = strings.TrimPrefix(name, "ckpt_")

	parts := strings.Split(name, "_")
	if len(parts) < 4 {
		return RunKey{}, fmt.Errorf("unrecognized output filename %q", path)
	}

	m := taskPattern.FindStringSubmatch(name)
	if m == nil {
		return RunKey{}, fmt.Errorf("no task number in output filename %q", path)
	}
	taskNum, err := strconv.Atoi(m[1])
	if err != nil || !TaskID(taskNum).Valid() {
		return RunKey{}, fmt.Errorf("invalid task number in output filename %q", path)
	}

	setting, err := ParseSetting(strings.Join(parts[3:], "_"))
	if err != nil {
		return RunKey{}, fmt.Errorf("output filename %q: %w", path, err)
	}

	language, err := ParseLanguage(parts[1])
	if err != nil {
		return RunKey{}, fmt.Errorf("output filename %q: %w", path, err)
	}

	return RunKey{
		Model:    parts[0],
		Language: language,
		Task:     TaskID(taskNum),
		Setting:  setting,
	}, nil
}
