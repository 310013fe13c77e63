package prompts_test

import (
	"strings"
	"testing"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsComplete(t *testing.T) {
	for _, lang := range benchmark.Languages {
		system, err := prompts.SystemPrompt(lang)
		require.NoError(t, err, "language %s", lang)
		assert.NotEmpty(t, system)

		for task := benchmark.TaskID(1); task <= 8; task++ {
			desc, err := prompts.TaskDescription(lang, task)
			require.NoError(t, err, "language %s task %d", lang, task)
			assert.NotEmpty(t, desc)
		}
	}
}

func TestBuildImageOnlyPrompt(t *testing.T) {
	prompt, err := prompts.Build(benchmark.English, benchmark.ObjectRecognition, benchmark.ZeroshotNoRationales, "")
	require.NoError(t, err)

	desc, err := prompts.TaskDescription(benchmark.English, benchmark.ObjectRecognition)
	require.NoError(t, err)

	assert.Contains(t, prompt, desc)
	assert.NotContains(t, strings.ToLower(prompt), prompts.RationaleMarker)
}

func TestBuildImageTextPromptIncludesText(t *testing.T) {
	const article = "The cathedral overlooks the old market square."

	prompt, err := prompts.Build(benchmark.English, benchmark.ImageTextMatching, benchmark.ZeroshotNoRationales, article)
	require.NoError(t, err)
	assert.Contains(t, prompt, article)
}

func TestBuildRationaleSettingAppendsInstruction(t *testing.T) {
	for _, lang := range benchmark.Languages {
		prompt, err := prompts.Build(lang, benchmark.SceneUnderstanding, benchmark.ZeroshotWithRationales, "")
		require.NoError(t, err, "language %s", lang)
		assert.Contains(t, strings.ToLower(prompt), prompts.RationaleMarker, "language %s", lang)
	}
}

func TestBuildOneShotPrependsExemplar(t *testing.T) {
	zeroshot, err := prompts.Build(benchmark.Swahili, benchmark.ImageCaptioning, benchmark.ZeroshotNoRationales, "")
	require.NoError(t, err)

	oneshot, err := prompts.Build(benchmark.Swahili, benchmark.ImageCaptioning, benchmark.OneshotNoRationales, "")
	require.NoError(t, err)

	assert.Greater(t, len(oneshot), len(zeroshot))
	assert.True(t, strings.HasSuffix(oneshot, zeroshot), "one-shot prompt should end with the zero-shot body")
}

func TestSplitRationale(t *testing.T) {
	analysis, rationale := prompts.SplitRationale("The image shows a cat.\n\nYour rationale: The whiskers and ears are clearly visible.")
	assert.Equal(t, "The image shows a cat.", analysis)
	assert.Equal(t, "The whiskers and ears are clearly visible.", rationale)

	// Marker casing from the model may vary.
	analysis, rationale = prompts.SplitRationale("Analysis here. YOUR RATIONALE: because.")
	assert.Equal(t, "Analysis here.", analysis)
	assert.Equal(t, "because.", rationale)

	analysis, rationale = prompts.SplitRationale("Only an answer, no marker.")
	assert.Equal(t, "Only an answer, no marker.", analysis)
	assert.Equal(t, "No explicit rationale provided.", rationale)
}
