package prompts

import "vlures-harness/internal/benchmark"

var english = &languageConfig{
	system: "You are an AI assistant that analyzes images and text.",

	imageOnly: mustTemplate("english_image_only", `You are an intelligent assistant tasked with analyzing images. Please perform the following task for the given image:

{{ .TaskDescription }}

Provide your analysis for this task only, clearly labeled.`),

	imageText: mustTemplate("english_image_text", `You are an intelligent assistant tasked with analyzing the relationship between images and text. Please examine both the image and the provided text carefully.

Text associated with the image:
{{ .TextContent }}

Task:
{{ .TaskDescription }}

Provide your analysis based on both the image and text. Be specific and reference evidence from both sources.`),

	rationale: `Structure your response in two clearly labeled parts:
1. Your analysis: the result of the task above.
2. Your rationale: Explain step by step how you arrived at your analysis, citing the specific visual (and textual, if provided) evidence that supports each conclusion.`,

	exemplar: `Here is a worked example of the expected response style.

Example task: Analyze the image and list all objects present, categorized into groups.
Example response:
Furniture: a wooden dining table, four matching chairs.
Electronic devices: a laptop (open, on the table), a smartphone.
Tableware: two white ceramic mugs.
Each object is named specifically and placed in an appropriate category.

Now complete the task below for the new image in the same style.`,

	tasks: map[benchmark.TaskID]string{
		benchmark.ObjectRecognition:         "Analyze this image and list all objects present. Categorize each object into groups such as furniture, electronic devices, clothing, etc. Be thorough and specific in your identification.",
		benchmark.SceneUnderstanding:        "Describe the overall scene in this image. What is the setting, and what activities or events are taking place? Provide a comprehensive overview of the environment and any actions occurring.",
		benchmark.RelationshipUnderstanding: "Identify any interactions or relationships between objects or entities in this image. How are they related or interacting with each other? Explain any spatial, functional, or social connections you observe.",
		benchmark.SemanticSegmentation:      "Divide this image into different semantic regions. Label each region (e.g., sky, buildings, people, street) and briefly describe its contents. Provide a clear breakdown of the image's composition.",
		benchmark.ImageCaptioning:           "Provide a detailed, natural language description of what is happening in this image. Narrate the scene as if you were explaining it to someone who cannot see it, including all relevant details and actions.",
		benchmark.ImageTextMatching:         "Extract and list the specific parts of the text that closely match or directly reference entities, objects, or scenes depicted in the image. Be precise in identifying these connections and explain the visual evidence that supports each textual reference.",
		benchmark.Unrelatedness:             "Identify which parts of the text are not relevant to or not represented in the image. Explain why these elements are unrelated by describing what is missing in the image that would be needed to illustrate these textual elements.",
		benchmark.VisualQuestionAnswering:   "What places are mentioned in the text or shown in the image? For each place identified, indicate whether it appears in the text, the image, or both. If any of these places are famous or well-known locations, explain why they are significant.",
	},
}
