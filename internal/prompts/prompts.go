// Package prompts holds the VLURes prompt catalog: per-language system
// prompts, inference templates, and the eight task descriptions in each of
// the four benchmark languages.
package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"vlures-harness/internal/benchmark"
)

type languageConfig struct {
	system string

	// imageOnly is used for tasks 1-5, imageText for tasks 6-8. Both are
	// parsed as text/template bodies over promptFields.
	imageOnly *template.Template
	imageText *template.Template

	// rationale is appended to the prompt for the with-rationales settings.
	rationale string

	// exemplar is a worked example block prepended for the one-shot settings.
	exemplar string

	tasks map[benchmark.TaskID]string
}

type promptFields struct {
	TaskDescription string
	TextContent     string
}

var configs = map[benchmark.Language]*languageConfig{
	benchmark.English:  english,
	benchmark.Japanese: japanese,
	benchmark.Swahili:  swahili,
	benchmark.Urdu:     urdu,
}

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

// SystemPrompt returns the per-language system message sent with every
// inference request.
func SystemPrompt(lang benchmark.Language) (string, error) {
	cfg, ok := configs[lang]
	if !ok {
		return "", fmt.Errorf("no prompt configuration for language %q", lang)
	}
	return cfg.system, nil
}

// TaskDescription returns the localized instruction for the given task.
func TaskDescription(lang benchmark.Language, task benchmark.TaskID) (string, error) {
	cfg, ok := configs[lang]
	if !ok {
		return "", fmt.Errorf("no prompt configuration for language %q", lang)
	}
	desc, ok := cfg.tasks[task]
	if !ok {
		return "", fmt.Errorf("no task %d description for language %q", task, lang)
	}
	return desc, nil
}

// Build assembles the full user prompt for one inference request.
// textContent is only consulted for image-text tasks (6-8); for one-shot
// settings a worked exemplar is prepended and for with-rationales settings
// the rationale instruction is appended.
func Build(lang benchmark.Language, task benchmark.TaskID, setting benchmark.Setting, textContent string) (string, error) {
	cfg, ok := configs[lang]
	if !ok {
		return "", fmt.Errorf("no prompt configuration for language %q", lang)
	}
	desc, ok := cfg.tasks[task]
	if !ok {
		return "", fmt.Errorf("no task %d description for language %q", task, lang)
	}

	tmpl := cfg.imageOnly
	if task.RequiresText() {
		tmpl = cfg.imageText
	}

	var sb strings.Builder
	if setting.OneShot() {
		sb.WriteString(cfg.exemplar)
		sb.WriteString("\n\n")
	}
	if err := tmpl.Execute(&sb, promptFields{TaskDescription: desc, TextContent: textContent}); err != nil {
		return "", fmt.Errorf("rendering %s prompt for task %d: %w", lang, task, err)
	}
	if setting.WithRationales() {
		sb.WriteString("\n\n")
		sb.WriteString(cfg.rationale)
	}
	return sb.String(), nil
}

// RationaleMarker separates the analysis from the rationale in model output
// for the with-rationales settings. The marker is requested in English for
// every language; models follow the labeling instruction even when the
// response body is localized.
const RationaleMarker = "your rationale:"

// SplitRationale divides a with-rationales response into its analysis and
// rationale halves. When no marker is present the whole response is treated
// as the analysis.
func SplitRationale(response string) (analysis, rationale string) {
	idx := strings.Index(strings.ToLower(response), RationaleMarker)
	if idx < 0 {
		return strings.TrimSpace(response), "No explicit rationale provided."
	}
	analysis = strings.TrimSpace(response[:idx])
	rationale = strings.TrimSpace(response[idx+len(RationaleMarker):])
	return analysis, rationale
}
