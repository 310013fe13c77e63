package benchmark_test

import (
	"testing"

	"vlures-harness/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageCodes(t *testing.T) {
	codes := map[benchmark.Language]string{
		benchmark.English:  "En",
		benchmark.Japanese: "Jp",
		benchmark.Swahili:  "Sw",
		benchmark.Urdu:     "Ur",
	}
	for lang, code := range codes {
		assert.Equal(t, code, lang.Code())
	}
}

func TestParseLanguage(t *testing.T) {
	lang, err := benchmark.ParseLanguage("Swahili")
	require.NoError(t, err)
	assert.Equal(t, benchmark.Swahili, lang)

	_, err = benchmark.ParseLanguage("French")
	assert.Error(t, err)
}

func TestTaskRequiresText(t *testing.T) {
	for task := benchmark.TaskID(1); task <= 5; task++ {
		assert.False(t, task.RequiresText(), "task %d is image-only", task)
	}
	for task := benchmark.TaskID(6); task <= 8; task++ {
		assert.True(t, task.RequiresText(), "task %d is image-text", task)
	}
}

func TestParseTaskID(t *testing.T) {
	task, err := benchmark.ParseTaskID("8")
	require.NoError(t, err)
	assert.Equal(t, benchmark.VisualQuestionAnswering, task)

	for _, bad := range []string{"0", "9", "abc", ""} {
		_, err := benchmark.ParseTaskID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSettingFlags(t *testing.T) {
	assert.False(t, benchmark.ZeroshotNoRationales.OneShot())
	assert.False(t, benchmark.ZeroshotNoRationales.WithRationales())
	assert.False(t, benchmark.ZeroshotWithRationales.OneShot())
	assert.True(t, benchmark.ZeroshotWithRationales.WithRationales())
	assert.True(t, benchmark.OneshotNoRationales.OneShot())
	assert.False(t, benchmark.OneshotNoRationales.WithRationales())
	assert.True(t, benchmark.OneshotWithRationales.OneShot())
	assert.True(t, benchmark.OneshotWithRationales.WithRationales())
}

func TestParseSetting(t *testing.T) {
	for _, s := range benchmark.Settings {
		parsed, err := benchmark.ParseSetting(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := benchmark.ParseSetting("zero_shot_no_rat")
	assert.Error(t, err)
}

func TestRunKeyFilenames(t *testing.T) {
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.English,
		Task:     benchmark.ObjectRecognition,
		Setting:  benchmark.ZeroshotNoRationales,
	}

	assert.Equal(t, "gpt-4o_English_task1_zeroshot_no_rationales.json", key.OutputFile())
	assert.Equal(t, "ckpt_gpt-4o_English_task1_zeroshot_no_rationales.json", key.CheckpointFile())
	assert.Equal(t, "scores_gpt-4o_English_task1_zeroshot_no_rationales.json", key.ScoresFile())
	assert.Equal(t, "ckpt_scores_gpt-4o_English_task1_zeroshot_no_rationales.json", key.ScoresCheckpointFile())
}

func TestParseOutputFilename(t *testing.T) {
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.Japanese,
		Task:     benchmark.Unrelatedness,
		Setting:  benchmark.OneshotWithRationales,
	}

	for _, name := range []string{
		key.OutputFile(),
		key.ScoresFile(),
		"results/inference_outputs/" + key.OutputFile(),
	} {
		parsed, err := benchmark.ParseOutputFilename(name)
		require.NoError(t, err, "filename %q", name)
		assert.Equal(t, key, parsed)
	}

	for _, bad := range []string{
		"nonsense.json",
		"gpt-4o_English.json",
		"gpt-4o_English_task1_zero_shot_no_rat.json",
		"gpt-4o_French_task1_zeroshot_no_rationales.json",
	} {
		_, err := benchmark.ParseOutputFilename(bad)
		assert.Error(t, err, "filename %q", bad)
	}
}
