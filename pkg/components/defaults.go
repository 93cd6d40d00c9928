package components

import "github.com/shouni/go-prompt-studio/pkg/domain"

// DefaultArrays は組み込みのコンポーネントデータです。
// すべてのカテゴリは空でないことが不変条件であり、store_test で検証しています。
func DefaultArrays() domain.ComponentDataArrays {
	return domain.ComponentDataArrays{
		domain.CategorySubject: {
			"portrait", "full body shot", "landscape", "still life",
			"cityscape", "close-up portrait", "group scene", "silhouette",
		},
		domain.GenderedKey(domain.CategoryHairstyle, domain.GenderFemale): {
			"long flowing hair", "twin tails", "braided bun", "side ponytail", "hime cut",
		},
		domain.GenderedKey(domain.CategoryHairstyle, domain.GenderMale): {
			"short cropped hair", "undercut", "slicked back hair", "messy spikes", "man bun",
		},
		domain.GenderedKey(domain.CategoryHairstyle, domain.GenderNeutral): {
			"shoulder-length hair", "wavy bob", "curly hair", "straight bangs", "shaved sides",
		},
		domain.CategoryHairColor: {
			"silver", "jet black", "chestnut brown", "platinum blonde", "deep crimson", "pastel pink",
		},
		domain.CategoryEyeColor: {
			"amber", "emerald green", "ice blue", "violet", "heterochromatic", "dark brown",
		},
		domain.CategoryBodyType: {
			"slender", "athletic", "petite", "muscular", "curvy", "tall and lean",
		},
		domain.GenderedKey(domain.CategoryClothing, domain.GenderFemale): {
			"flowing evening gown", "frilled sundress", "sailor uniform", "lace blouse", "kimono with floral obi",
		},
		domain.GenderedKey(domain.CategoryClothing, domain.GenderMale): {
			"tailored three-piece suit", "leather jacket", "military uniform", "linen shirt", "haori and hakama",
		},
		domain.GenderedKey(domain.CategoryClothing, domain.GenderNeutral): {
			"oversized hoodie", "trench coat", "denim jacket", "knit sweater", "lab coat",
		},
		domain.CategoryExpression: {
			"gentle smile", "determined gaze", "melancholic stare", "playful smirk", "serene expression",
		},
		domain.CategoryPose: {
			"standing with arms crossed", "sitting by a window", "walking forward",
			"looking over the shoulder", "leaning against a wall", "mid-stride dynamic pose",
		},
		domain.CategoryMakeup: {
			"natural makeup", "smoky eyeshadow", "glossy lips", "subtle blush", "bold eyeliner",
		},
		domain.CategoryAccessory: {
			"silver earrings", "wide-brimmed hat", "round glasses", "choker necklace", "leather satchel",
		},
		domain.CategoryPlace: {
			"neon-lit alleyway", "sunflower field", "ancient library", "rain-soaked street",
			"mountain summit", "abandoned greenhouse", "seaside promenade",
		},
		domain.CategoryLighting: {
			"golden hour", "soft window light", "dramatic rim lighting", "candlelight",
			"overcast diffuse light", "neon glow", "moonlight",
		},
		domain.CategoryWeather: {
			"light drizzle", "clear sky", "heavy snowfall", "rolling fog", "summer thunderstorm",
		},
		domain.CategorySeason: {
			"spring", "midsummer", "late autumn", "deep winter",
		},
		domain.CategoryTimeOfDay: {
			"dawn", "high noon", "dusk", "midnight", "blue hour",
		},
		domain.CategoryMood: {
			"peaceful", "wistful", "triumphant", "mysterious", "nostalgic", "tense",
		},
		domain.CategoryStyle: {
			"watercolor", "art nouveau", "cyberpunk", "ukiyo-e", "impressionist",
			"cel-shaded anime", "photorealistic",
		},
		domain.CategoryArtist: {
			"in the style of a classical portrait master", "inspired by studio concept art",
			"reminiscent of vintage poster illustration", "like a modern digital painter",
		},
		domain.CategoryColorPalette: {
			"muted earth tones", "vivid complementary colors", "monochrome with one accent",
			"pastel gradient", "high-saturation neon",
		},
		domain.CategoryTexture: {
			"visible brush strokes", "film grain", "smooth gradients", "paper texture", "canvas weave",
		},
		domain.CategoryComposition: {
			"rule of thirds", "centered symmetry", "diagonal leading lines", "framed by foliage", "negative space emphasis",
		},
		domain.CategoryCameraAngle: {
			"low angle", "bird's-eye view", "eye level", "dutch angle", "over-the-shoulder",
		},
		domain.CategoryCameraLens: {
			"85mm portrait lens", "wide-angle 24mm", "macro lens", "tilt-shift", "fisheye",
		},
		domain.CategoryDepthOfField: {
			"shallow depth of field", "deep focus", "creamy bokeh background", "foreground blur",
		},
		domain.CategoryEra: {
			"victorian era", "roaring twenties", "near-future", "feudal japan", "retro 80s",
		},
		domain.CategoryAtmosphere: {
			"dreamlike haze", "crisp morning air", "smoky ambience", "ethereal glow", "ominous stillness",
		},
		domain.CategoryMaterial: {
			"polished brass", "weathered wood", "frosted glass", "raw silk", "brushed concrete",
		},
		domain.CategoryPattern: {
			"geometric tiling", "floral motif", "houndstooth", "marbled swirls", "starry speckle",
		},
		domain.CategoryDetail: {
			"intricate filigree", "fine embroidery", "delicate lacework", "ornate trim", "hand-painted detail",
		},
		domain.CategoryContrast: {
			"high contrast", "soft low contrast", "chiaroscuro", "balanced midtones",
		},
		domain.CategoryFraming: {
			"tight crop", "wide establishing frame", "medium shot", "extreme close-up",
		},
		domain.CategoryPerspective: {
			"one-point perspective", "isometric view", "forced perspective", "atmospheric perspective",
		},
		domain.CategoryBackground: {
			"blurred city lights", "plain studio backdrop", "layered mountain silhouettes", "cluttered workshop shelves",
		},
		domain.CategoryForeground: {
			"falling petals", "rain droplets on glass", "drifting embers", "out-of-focus grass",
		},
		domain.CategoryMedium: {
			"oil on canvas", "digital painting", "gouache", "charcoal sketch", "risograph print",
		},
		domain.CategoryFinish: {
			"matte finish", "glossy finish", "satin sheen", "weathered patina",
		},
		domain.CategoryEffect: {
			"light leaks", "chromatic aberration", "double exposure", "motion blur", "halation",
		},
		domain.CategoryOrnament: {
			"gilded border", "art deco flourishes", "botanical garland", "celestial motifs",
		},
	}
}

// DefaultQualityPresets は組み込みの品質プリセットカタログです。
func DefaultQualityPresets() []domain.QualityPreset {
	return []domain.QualityPreset{
		{
			ID:      "standard",
			Tags:    []string{"high quality", "detailed"},
			Weight:  1.0,
			Default: true,
		},
		{
			ID:           "masterpiece",
			Tags:         []string{"masterpiece", "best quality", "ultra-detailed"},
			NegativeTags: []string{"low quality", "worst quality", "jpeg artifacts"},
			Weight:       1.2,
		},
		{
			ID:           "photorealistic",
			Tags:         []string{"photorealistic", "8k uhd", "sharp focus"},
			NegativeTags: []string{"cartoon", "illustration", "painting"},
			Weight:       1.1,
		},
		{
			ID:           "anime",
			Tags:         []string{"anime style", "clean line art", "vibrant colors"},
			NegativeTags: []string{"photorealistic", "3d render"},
			Weight:       1.0,
		},
		{
			ID:           "artistic",
			Tags:         []string{"fine art", "expressive brushwork", "gallery quality"},
			NegativeTags: []string{"amateur", "oversaturated"},
			Weight:       1.0,
		},
	}
}

// DefaultTemplates は組み込みのルールテンプレートです。
// standard はテンプレート置換を行わない素のモードを表し、パターンを持ちません。
func DefaultTemplates() []domain.RuleTemplate {
	return []domain.RuleTemplate{
		{
			ID:    domain.TemplateStandard,
			Notes: "素のプロンプトをそのまま使用します。",
		},
		{
			ID:       domain.FormatPipeline,
			Template: "{prompt} | quality: {quality} | style: [ {style} | {artist} ]",
			Notes:    "パイプ区切りの機械処理向けフォーマットです。",
		},
		{
			ID:       domain.FormatNarrative,
			Template: "{subject} {pose} in {setting}, bathed in {lighting}, evoking a {mood} mood [ wearing {clothing} | {attributes} ]",
			Notes:    "散文調の叙述フォーマットです。",
		},
		{
			ID:       domain.FormatWildcard,
			Template: "{prompt} [ {style} | {artist} | {camera} ] {quality}",
			Notes:    "スタイル候補を括弧グループでまとめたワイルドカード形式です。",
		},
	}
}

// DefaultAspectRatios は対応するアスペクト比のカタログです。
func DefaultAspectRatios() []string {
	return []string{"1:1", "3:2", "4:3", "16:9", "9:16", "2:3"}
}
