package prompts

import "vlures-harness/internal/benchmark"

var japanese = &languageConfig{
	system: "あなたは画像とテキストを分析し、日本語で回答する AI アシスタントです。",

	imageOnly: mustTemplate("japanese_image_only", `あなたは画像を分析し、日本語で回答する知的なアシスタントです。
以下のタスクに従って、与えられた画像を分析してください：

{{ .TaskDescription }}

このタスクに対する分析のみを明確にラベル付けして日本語で提供してください。`),

	imageText: mustTemplate("japanese_image_text", `あなたは画像とテキストの関係を分析し、日本語で回答する知的なアシスタントです。
画像と提供されたテキストの両方を注意深く検討してください。

画像に関連するテキスト:
{{ .TextContent }}

タスク:
{{ .TaskDescription }}

画像とテキストの両方に基づいてあなたの分析を提供してください。具体的で、両方のソースからの証拠を参照してください。`),

	rationale: `回答は次の二つの部分に明確にラベル付けして構成してください：
1. Your analysis: 上記タスクの結果。
2. Your rationale: どのようにその分析に至ったかを、各結論を裏付ける具体的な視覚的（テキストが提供されている場合はテキスト的）証拠を挙げながら、段階的に説明してください。`,

	exemplar: `期待される回答スタイルの作業例を示します。

例のタスク: 画像を分析し、存在するすべてのオブジェクトをグループに分類してリストアップする。
例の回答:
家具: 木製のダイニングテーブル、お揃いの椅子4脚。
電子機器: ノートパソコン（開いた状態でテーブルの上）、スマートフォン。
食器: 白い陶器のマグカップ2個。
各オブジェクトは具体的に名前が付けられ、適切なカテゴリに分類されています。

それでは、新しい画像に対して以下のタスクを同じスタイルで完了してください。`,

	tasks: map[benchmark.TaskID]string{
		benchmark.ObjectRecognition:         "この画像に存在するすべてのオブジェクトを分析し、リストアップしてください。家具、電子機器、衣類などのグループにオブジェクトを分類してください。識別は徹底的かつ具体的に行ってください。",
		benchmark.SceneUnderstanding:        "この画像の全体的な場面を説明してください。どのような設定で、どのような活動や出来事が起こっているでしょうか？環境や発生している行動の包括的な概要を提供してください。",
		benchmark.RelationshipUnderstanding: "この画像内のオブジェクトや実体間の相互作用や関係を特定してください。それらはどのように関連し、相互作用していますか？空間的、機能的、または社会的なつながりを説明してください。",
		benchmark.SemanticSegmentation:      "この画像を異なる意味領域に分割してください。各領域（例：空、建物、人、通りなど）にラベルを付け、その内容を簡潔に説明してください。画像の構成を明確に分類してください。",
		benchmark.ImageCaptioning:           "この画像で起こっていることの詳細な自然言語による説明を提供してください。まるで見ることができない人に説明するかのように、すべての関連する詳細や行動を含めて場面を語ってください。",
		benchmark.ImageTextMatching:         "テキストの特定の部分で、画像に描かれているエンティティ、オブジェクト、またはシーンに密接に一致または直接言及している部分を抽出してリストアップしてください。これらの接続を特定する際に正確であり、各テキスト参照をサポートする視覚的証拠を説明してください。",
		benchmark.Unrelatedness:             "テキストのどの部分が画像に関連していないか、または画像に表現されていないかを特定してください。これらのテキスト要素を説明するために画像に必要なものが何が欠けているかを説明して、これらの要素が無関係である理由を説明してください。",
		benchmark.VisualQuestionAnswering:   "テキストや画像で言及されている場所はどこですか？特定された各場所について、それがテキスト、画像、またはその両方に現れるかを示してください。これらの場所のいずれかが有名または広く知られている場所である場合、それらが重要である理由を説明してください。",
	},
}
