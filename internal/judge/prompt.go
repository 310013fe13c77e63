package judge

import (
	"fmt"
	"strings"

	"vlures-harness/internal/benchmark"
)

// taskInstructions restate each task in English for the judge, regardless of
// the language the response was produced in.
var taskInstructions = map[benchmark.TaskID]string{
	benchmark.ObjectRecognition:       "Identify and list all objects present in the image. Group objects into categories where appropriate.",
	benchmark.SceneUnderstanding:      "Analyze the overall scene depicted in the image. Describe the setting, environment, and the general context of what is taking place.",
	benchmark.RelationshipUnderstanding: "Identify the relationships and interactions between objects and entities in the image, including spatial relationships.",
	benchmark.SemanticSegmentation:    "Divide the image into meaningful regions and label each region with its semantic category.",
	benchmark.ImageCaptioning:         "Generate a concise caption that accurately describes the main content of the image.",
	benchmark.ImageTextMatching:       "Assess how well the image corresponds to the accompanying text article, identifying elements of the image referenced in the text.",
	benchmark.Unrelatedness:           "Identify entities or information mentioned in the text that are not depicted in the image, and elements of the image not mentioned in the text.",
	benchmark.VisualQuestionAnswering: "Answer questions about the image using both the visual content and the accompanying text.",
}

// BuildPrompt renders the judging prompt for one response. The judge always
// works in English and must answer with a bare JSON score object.
func BuildPrompt(task benchmark.TaskID, language benchmark.Language, response string) string {
	var b strings.Builder
	b.WriteString("You are an impartial judge evaluating the quality of a vision-language model's response.\n\n")
	fmt.Fprintf(&b, "The model was asked to perform the following task on an image, responding in %s:\n", language)
	fmt.Fprintf(&b, "Task: %s\n\n", taskInstructions[task])
	b.WriteString("Model response:\n")
	b.WriteString(response)
	b.WriteString("\n\n")
	b.WriteString("Evaluate the response on three criteria:\n")
	b.WriteString("1. Accuracy: is the response plausible and faithful to the task?\n")
	b.WriteString("2. Helpfulness: does the response fully address the task?\n")
	b.WriteString("3. Linguistic Quality: is the response fluent and well-formed in the target language?\n\n")
	b.WriteString("Assign a single overall score from 0 to 100.\n")
	b.WriteString(`Respond with ONLY a JSON object of the form {"score": N} and nothing else.`)
	return b.String()
}
