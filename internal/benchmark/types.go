package benchmark

import (
	"fmt"
	"strconv"
)

// Language is one of the four languages covered by the VLURes benchmark.
type Language string

const (
	English  Language = "English"
	Japanese Language = "Japanese"
	Swahili  Language = "Swahili"
	Urdu     Language = "Urdu"
)

var Languages = []Language{English, Japanese, Swahili, Urdu}

var languageCodes = map[Language]string{
	English:  "En",
	Japanese: "Jp",
	Swahili:  "Sw",
	Urdu:     "Ur",
}

// Code returns the short directory code for the language (e.g. "En"),
// matching the per-language subdirectory layout of the dataset.
func (l Language) Code() string {
	return languageCodes[l]
}

func (l Language) Valid() bool {
	_, ok := languageCodes[l]
	return ok
}

func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q (supported: English, Japanese, Swahili, Urdu)", s)
	}
	return l, nil
}

// TaskID identifies one of the eight fixed vision-language tasks.
type TaskID int

const (
	ObjectRecognition         TaskID = 1
	SceneUnderstanding        TaskID = 2
	RelationshipUnderstanding TaskID = 3
	SemanticSegmentation      TaskID = 4
	ImageCaptioning           TaskID = 5
	ImageTextMatching         TaskID = 6
	Unrelatedness             TaskID = 7
	VisualQuestionAnswering   TaskID = 8
)

var taskNames = map[TaskID]string{
	ObjectRecognition:         "Object Recognition",
	SceneUnderstanding:        "Scene Understanding",
	RelationshipUnderstanding: "Relationship Understanding",
	SemanticSegmentation:      "Semantic Segmentation",
	ImageCaptioning:           "Image Captioning",
	ImageTextMatching:         "Image-Text Matching",
	Unrelatedness:             "Unrelatedness",
	VisualQuestionAnswering:   "Visual Question Answering",
}

func (t TaskID) Name() string {
	return taskNames[t]
}

func (t TaskID) Valid() bool {
	return t >= 1 && t <= 8
}

// RequiresText reports whether the task consumes the article text alongside
// the image. Tasks 1-5 are image-only, tasks 6-8 are image-text.
func (t TaskID) RequiresText() bool {
	return t >= ImageTextMatching
}

func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("task number must be an integer, got %q", s)
	}
	t := TaskID(n)
	if !t.Valid() {
		return 0, fmt.Errorf("task number must be in [1, 8], got %d", n)
	}
	return t, nil
}

// Setting is a named combination of exemplar count (zero-shot vs one-shot)
// and rationale presence, selecting how the inference prompt is built.
type Setting string

const (
	ZeroshotNoRationales   Setting = "zeroshot_no_rationales"
	ZeroshotWithRationales Setting = "zeroshot_with_rationales"
	OneshotNoRationales    Setting = "oneshot_no_rationales"
	OneshotWithRationales  Setting = "oneshot_with_rationales"
)

var Settings = []Setting{
	ZeroshotNoRationales,
	ZeroshotWithRationales,
	OneshotNoRationales,
	OneshotWithRationales,
}

func (s Setting) Valid() bool {
	switch s {
	case ZeroshotNoRationales, ZeroshotWithRationales, OneshotNoRationales, OneshotWithRationales:
		return true
	}
	return false
}

func (s Setting) OneShot() bool {
	return s == OneshotNoRationales || s == OneshotWithRationales
}

func (s Setting) WithRationales() bool {
	return s == ZeroshotWithRationales || s == OneshotWithRationales
}

func ParseSetting(s string) (Setting, error) {
	setting := Setting(s)
	if !setting.Valid() {
		return "", fmt.Errorf("unknown setting %q (supported: %v)", s, Settings)
	}
	return setting, nil
}
