package prompts

import "vlures-harness/internal/benchmark"

var swahili = &languageConfig{
	system: "Wewe ni AI msaidizi unayechambua picha na maandishi na kutoa majibu kwa lugha ya Kiswahili.",

	imageOnly: mustTemplate("swahili_image_only", `Wewe ni msaidizi wa akili unaechambua picha na kutoa majibu kwa lugha ya Kiswahili.
Tafadhali chambua picha uliyopewa kwa kufuata maelekezo yafuatayo:

{{ .TaskDescription }}

Tafadhali toa uchambuzi wako kwa lugha ya Kiswahili pekee, na uweke lebo wazi.`),

	imageText: mustTemplate("swahili_image_text", `Wewe ni msaidizi wa akili unayechambua uhusiano kati ya picha na maandishi na kutoa majibu kwa lugha ya Kiswahili.
Tafadhali chunguza kwa makini picha na maandishi yaliyotolewa.

Maandishi yanayohusiana na picha:
{{ .TextContent }}

Kazi:
{{ .TaskDescription }}

Toa uchambuzi wako ukizingatia picha na maandishi. Kuwa mahususi na taja ushahidi kutoka vyanzo vyote viwili.`),

	rationale: `Panga jibu lako katika sehemu mbili zilizowekwa lebo wazi:
1. Your analysis: matokeo ya kazi iliyotajwa hapo juu.
2. Your rationale: Eleza hatua kwa hatua jinsi ulivyofikia uchambuzi wako, ukitaja ushahidi mahususi wa kuona (na wa maandishi, ikiwa umetolewa) unaounga mkono kila hitimisho.`,

	exemplar: `Hapa kuna mfano wa mtindo wa jibu unaotarajiwa.

Kazi ya mfano: Changanua picha na uorodheshe vitu vyote vilivyomo, vikiwa vimeainishwa katika makundi.
Jibu la mfano:
Samani: meza ya mbao ya kulia chakula, viti vinne vinavyofanana.
Vifaa vya elektroniki: kompyuta mpakato (imefunguliwa, juu ya meza), simu janja.
Vyombo vya mezani: vikombe viwili vyeupe vya kauri.
Kila kitu kimetajwa mahususi na kuwekwa katika kundi linalofaa.

Sasa kamilisha kazi iliyo hapa chini kwa picha mpya kwa mtindo uleule.`,

	tasks: map[benchmark.TaskID]string{
		benchmark.ObjectRecognition:         "Changanua picha hii na uorodheshe vitu vyote vilivyomo. Ainisha kila kitu katika makundi kama vile samani, vifaa vya elektroniki, mavazi, n.k. Kuwa makini na maalum katika utambulisho wako.",
		benchmark.SceneUnderstanding:        "Elezea mandhari nzima katika picha hii. Mazingira ni yapi, na ni shughuli au matukio gani yanayoendelea? Toa maelezo ya kina ya mazingira na vitendo vyovyote vinavyofanyika.",
		benchmark.RelationshipUnderstanding: "Tambua mahusiano yoyote au uhusiano kati ya vitu au viumbe katika picha hii. Vinahusianaje au vinaathirianaje? Eleza uhusiano wowote wa kimwili, kiutendaji, au kijamii unaoona.",
		benchmark.SemanticSegmentation:      "Gawanya picha hii katika maeneo tofauti ya kisemantiki. Taja kila eneo (k.m. anga, majengo, watu, barabara) na uelezee kwa ufupi yaliyomo. Toa mgawanyo wazi wa muundo wa picha.",
		benchmark.ImageCaptioning:           "Toa maelezo ya kina ya kimaandishi kuhusu kinachotokea katika picha hii. Simulia tukio kana kwamba unamwelezea mtu asiyeweza kuiona, ukijumuisha maelezo yote muhimu na vitendo.",
		benchmark.ImageTextMatching:         "Toa na uorodheshe sehemu mahususi za maandishi zinazofanana sana au zinazorejelea moja kwa moja vitu, viumbe, au mandhari zilizooneshwa katika picha. Kuwa sahihi katika kutambua uhusiano huu na ueleze ushahidi wa kuona unaounga mkono kila rejeleo la maandishi.",
		benchmark.Unrelatedness:             "Tambua ni sehemu gani za maandishi ambazo hazihusiani au haziwakilishwi katika picha. Eleza kwa nini vipengele hivi havihusiani kwa kuelezea kile kinachokosekana katika picha ambacho kingekuwa muhimu kufafanua vipengele hivi vya maandishi.",
		benchmark.VisualQuestionAnswering:   "Ni maeneo gani yametajwa katika maandishi au yanaonekana katika picha? Kwa kila eneo lililotambuliwa, onyesha kama linaonekana katika maandishi, picha, au vyote. Ikiwa maeneo haya yoyote ni mashuhuri au yanayojulikana sana, eleza kwa nini yana umuhimu.",
	},
}
