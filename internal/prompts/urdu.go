package prompts

import "vlures-harness/internal/benchmark"

var urdu = &languageConfig{
	system: "آپ ایک ایسے AI اسسٹنٹ ہیں جو تصاویر اور متن کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔",

	imageOnly: mustTemplate("urdu_image_only", `آپ ایک ایسے ذہین اسسٹنٹ ہیں جو تصاویر کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔
براہ کرم درج ذیل ٹاسک کے مطابق، دی گئی تصویر کا تجزیہ کریں:

{{ .TaskDescription }}

براہ کرم صرف اس ٹاسک کے لیے اپنا تجزیہ واضح طور پر اردو میں پیش کریں۔`),

	imageText: mustTemplate("urdu_image_text", `آپ ایک ایسے ذہین اسسٹنٹ ہیں جو تصاویر اور متن کے درمیان تعلق کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔
براہ کرم تصویر اور فراہم کردہ متن دونوں کا احتیاط سے جائزہ لیں۔

تصویر سے متعلق متن:
{{ .TextContent }}

ٹاسک:
{{ .TaskDescription }}

تصویر اور متن دونوں کے مطابق اپنا تجزیہ فراہم کریں۔ مخصوص ہوں اور دونوں ذرائع سے شواہد کا حوالہ دیں۔`),

	rationale: `اپنے جواب کو دو واضح لیبل شدہ حصوں میں ترتیب دیں:
1. Your analysis: اوپر دیے گئے ٹاسک کا نتیجہ۔
2. Your rationale: قدم بہ قدم وضاحت کریں کہ آپ اپنے تجزیے تک کیسے پہنچے، ہر نتیجے کی تائید کرنے والے مخصوص بصری (اور متنی، اگر فراہم کیا گیا ہو) شواہد کا حوالہ دیتے ہوئے۔`,

	exemplar: `متوقع جواب کے انداز کی ایک مکمل مثال یہ ہے۔

مثال کا ٹاسک: تصویر کا تجزیہ کریں اور موجود تمام اشیاء کو گروپس میں درجہ بندی کرتے ہوئے فہرست بنائیں۔
مثال کا جواب:
فرنیچر: لکڑی کی کھانے کی میز، چار ملتی جلتی کرسیاں۔
الیکٹرانک آلات: ایک لیپ ٹاپ (کھلا، میز پر)، ایک اسمارٹ فون۔
برتن: دو سفید چینی مٹی کے مگ۔
ہر شے کو مخصوص نام دیا گیا ہے اور مناسب زمرے میں رکھا گیا ہے۔

اب نئی تصویر کے لیے نیچے دیا گیا ٹاسک اسی انداز میں مکمل کریں۔`,

	tasks: map[benchmark.TaskID]string{
		benchmark.ObjectRecognition:         "اس تصویر کا تجزیہ کریں اور موجود تمام اشیاء کی فہرست بنائیں۔ ہر شے کو گروپس میں درجہ بندی کریں جیسے فرنیچر، الیکٹرانک آلات، کپڑے، وغیرہ۔ اپنی شناخت میں جامع اور مخصوص رہیں۔",
		benchmark.SceneUnderstanding:        "اس تصویر میں مجموعی منظر کی تفصیل بیان کریں۔ ماحول کیا ہے، اور کون سی سرگرمیاں یا واقعات پیش آرہے ہیں؟ ماحول اور کسی بھی قابل ذکر کارروائی کا جامع جائزہ فراہم کریں۔",
		benchmark.RelationshipUnderstanding: "اس تصویر میں اشیاء یا اکائیوں کے درمیان کسی بھی تعامل یا تعلقات کی نشاندہی کریں۔ وہ ایک دوسرے سے کیسے متعلق ہیں یا تعامل کر رہے ہیں؟ کسی بھی مکانی، فعال، یا سماجی روابط کی وضاحت کریں جو آپ دیکھتے ہیں۔",
		benchmark.SemanticSegmentation:      "اس تصویر کو مختلف معنی خیز علاقوں میں تقسیم کریں۔ ہر علاقے کو لیبل کریں (مثلاً، آسمان، عمارات، لوگ، سڑک) اور مختصراً اس کے مواد کی وضاحت کریں۔ تصویر کی ساخت کا واضح تجزیہ فراہم کریں۔",
		benchmark.ImageCaptioning:           "اس تصویر میں کیا ہو رہا ہے اس کی تفصیلی، قدرتی زبان میں وضاحت فراہم کریں۔ منظر کی ایسے بیان کریں جیسے آپ کسی ایسے شخص کو سمجھا رہے ہوں جو اسے دیکھ نہیں سکتا، تمام متعلقہ تفصیلات اور کارروائیوں کو شامل کرتے ہوئے۔",
		benchmark.ImageTextMatching:         "متن کے مخصوص حصے نکالیں اور فہرست بنائیں جو تصویر میں دکھائے گئے اداروں، اشیاء، یا مناظر سے قریبی مماثلت رکھتے ہیں یا براہ راست ان کا حوالہ دیتے ہیں۔ ان روابط کی شناخت میں درست رہیں اور ہر متنی حوالے کی تائید کرنے والے بصری شواہد کی وضاحت کریں۔",
		benchmark.Unrelatedness:             "متن کے کون سے حصے تصویر سے متعلق نہیں ہیں یا تصویر میں نمائندگی نہیں کرتے ہیں، اس کی نشاندہی کریں۔ ان عناصر کے غیر متعلقہ ہونے کی وجہ بیان کریں، یہ وضاحت کرکے کہ تصویر میں ان متنی عناصر کی وضاحت کے لیے کیا چیز غائب ہے۔",
		benchmark.VisualQuestionAnswering:   "متن یا تصویر میں کون سی جگہوں کا ذکر کیا گیا ہے؟ شناخت شدہ ہر جگہ کے لیے، بتائیں کہ یہ متن میں، تصویر میں، یا دونوں میں ظاہر ہوتی ہے۔ اگر ان میں سے کوئی بھی جگہ مشہور یا جانی پہچانی مقامات ہیں، تو بتائیں کہ وہ کیوں اہم ہیں۔",
	},
}
