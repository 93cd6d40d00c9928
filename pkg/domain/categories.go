package domain

// カテゴリ名の定数です。コンポーネントデータの配列キーおよび
// 統計カウンタのキーとして共通に使用します。
const (
	CategorySubject      = "subject"
	CategoryHairstyle    = "hairstyle"
	CategoryHairColor    = "hair_color"
	CategoryEyeColor     = "eye_color"
	CategoryBodyType     = "body_type"
	CategoryClothing     = "clothing"
	CategoryExpression   = "expression"
	CategoryPose         = "pose"
	CategoryMakeup       = "makeup"
	CategoryAccessory    = "accessory"
	CategoryPlace        = "place"
	CategoryLighting     = "lighting"
	CategoryWeather      = "weather"
	CategorySeason       = "season"
	CategoryTimeOfDay    = "time_of_day"
	CategoryMood         = "mood"
	CategoryStyle        = "style"
	CategoryArtist       = "artist"
	CategoryColorPalette = "color_palette"
	CategoryTexture      = "texture"
	CategoryComposition  = "composition"
	CategoryCameraAngle  = "camera_angle"
	CategoryCameraLens   = "camera_lens"
	CategoryDepthOfField = "depth_of_field"
	CategoryEra          = "era"
	CategoryAtmosphere   = "atmosphere"
	CategoryMaterial     = "material"
	CategoryPattern      = "pattern"
	CategoryDetail       = "detail"
	CategoryContrast     = "contrast"
	CategoryFraming      = "framing"
	CategoryPerspective  = "perspective"
	CategoryBackground   = "background"
	CategoryForeground   = "foreground"
	CategoryMedium       = "medium"
	CategoryFinish       = "finish"
	CategoryEffect       = "effect"
	CategoryOrnament     = "ornament"
)

// fieldBinding はカテゴリ名と GenerationOptions のフィールドを対応づける内部テーブルです。
// リフレクションを避け、宣言順を明示的に固定するのだ。
type fieldBinding struct {
	name string
	get  func(*GenerationOptions) string
	set  func(*GenerationOptions, string)
}

var characterBindings = []fieldBinding{
	{CategoryHairstyle, func(o *GenerationOptions) string { return o.Hairstyle }, func(o *GenerationOptions, v string) { o.Hairstyle = v }},
	{CategoryHairColor, func(o *GenerationOptions) string { return o.HairColor }, func(o *GenerationOptions, v string) { o.HairColor = v }},
	{CategoryEyeColor, func(o *GenerationOptions) string { return o.EyeColor }, func(o *GenerationOptions, v string) { o.EyeColor = v }},
	{CategoryBodyType, func(o *GenerationOptions) string { return o.BodyType }, func(o *GenerationOptions, v string) { o.BodyType = v }},
	{CategoryClothing, func(o *GenerationOptions) string { return o.Clothing }, func(o *GenerationOptions, v string) { o.Clothing = v }},
	{CategoryExpression, func(o *GenerationOptions) string { return o.Expression }, func(o *GenerationOptions, v string) { o.Expression = v }},
	{CategoryPose, func(o *GenerationOptions) string { return o.Pose }, func(o *GenerationOptions, v string) { o.Pose = v }},
	{CategoryMakeup, func(o *GenerationOptions) string { return o.Makeup }, func(o *GenerationOptions, v string) { o.Makeup = v }},
	{CategoryAccessory, func(o *GenerationOptions) string { return o.Accessory }, func(o *GenerationOptions, v string) { o.Accessory = v }},
}

var sceneBindings = []fieldBinding{
	{CategoryPlace, func(o *GenerationOptions) string { return o.Place }, func(o *GenerationOptions, v string) { o.Place = v }},
	{CategoryLighting, func(o *GenerationOptions) string { return o.Lighting }, func(o *GenerationOptions, v string) { o.Lighting = v }},
	{CategoryWeather, func(o *GenerationOptions) string { return o.Weather }, func(o *GenerationOptions, v string) { o.Weather = v }},
	{CategorySeason, func(o *GenerationOptions) string { return o.Season }, func(o *GenerationOptions, v string) { o.Season = v }},
	{CategoryTimeOfDay, func(o *GenerationOptions) string { return o.TimeOfDay }, func(o *GenerationOptions, v string) { o.TimeOfDay = v }},
	{CategoryMood, func(o *GenerationOptions) string { return o.Mood }, func(o *GenerationOptions, v string) { o.Mood = v }},
}

var styleBindings = []fieldBinding{
	{CategoryStyle, func(o *GenerationOptions) string { return o.Style }, func(o *GenerationOptions, v string) { o.Style = v }},
	{CategoryArtist, func(o *GenerationOptions) string { return o.Artist }, func(o *GenerationOptions, v string) { o.Artist = v }},
}

var detailBindings = []fieldBinding{
	{CategoryColorPalette, func(o *GenerationOptions) string { return o.ColorPalette }, func(o *GenerationOptions, v string) { o.ColorPalette = v }},
	{CategoryTexture, func(o *GenerationOptions) string { return o.Texture }, func(o *GenerationOptions, v string) { o.Texture = v }},
	{CategoryComposition, func(o *GenerationOptions) string { return o.Composition }, func(o *GenerationOptions, v string) { o.Composition = v }},
	{CategoryCameraAngle, func(o *GenerationOptions) string { return o.CameraAngle }, func(o *GenerationOptions, v string) { o.CameraAngle = v }},
	{CategoryCameraLens, func(o *GenerationOptions) string { return o.CameraLens }, func(o *GenerationOptions, v string) { o.CameraLens = v }},
	{CategoryDepthOfField, func(o *GenerationOptions) string { return o.DepthOfField }, func(o *GenerationOptions, v string) { o.DepthOfField = v }},
	{CategoryEra, func(o *GenerationOptions) string { return o.Era }, func(o *GenerationOptions, v string) { o.Era = v }},
	{CategoryAtmosphere, func(o *GenerationOptions) string { return o.Atmosphere }, func(o *GenerationOptions, v string) { o.Atmosphere = v }},
	{CategoryMaterial, func(o *GenerationOptions) string { return o.Material }, func(o *GenerationOptions, v string) { o.Material = v }},
	{CategoryPattern, func(o *GenerationOptions) string { return o.Pattern }, func(o *GenerationOptions, v string) { o.Pattern = v }},
	{CategoryDetail, func(o *GenerationOptions) string { return o.Detail }, func(o *GenerationOptions, v string) { o.Detail = v }},
	{CategoryContrast, func(o *GenerationOptions) string { return o.Contrast }, func(o *GenerationOptions, v string) { o.Contrast = v }},
	{CategoryFraming, func(o *GenerationOptions) string { return o.Framing }, func(o *GenerationOptions, v string) { o.Framing = v }},
	{CategoryPerspective, func(o *GenerationOptions) string { return o.Perspective }, func(o *GenerationOptions, v string) { o.Perspective = v }},
	{CategoryBackground, func(o *GenerationOptions) string { return o.Background }, func(o *GenerationOptions, v string) { o.Background = v }},
	{CategoryForeground, func(o *GenerationOptions) string { return o.Foreground }, func(o *GenerationOptions, v string) { o.Foreground = v }},
	{CategoryMedium, func(o *GenerationOptions) string { return o.Medium }, func(o *GenerationOptions, v string) { o.Medium = v }},
	{CategoryFinish, func(o *GenerationOptions) string { return o.Finish }, func(o *GenerationOptions, v string) { o.Finish = v }},
	{CategoryEffect, func(o *GenerationOptions) string { return o.Effect }, func(o *GenerationOptions, v string) { o.Effect = v }},
	{CategoryOrnament, func(o *GenerationOptions) string { return o.Ornament }, func(o *GenerationOptions, v string) { o.Ornament = v }},
}

// categoryBindings は subject を含む全カテゴリを合成順に並べたテーブルです。
var categoryBindings = buildCategoryBindings()

func buildCategoryBindings() []fieldBinding {
	all := []fieldBinding{
		{CategorySubject, func(o *GenerationOptions) string { return o.Subject }, func(o *GenerationOptions, v string) { o.Subject = v }},
	}
	all = append(all, characterBindings...)
	all = append(all, sceneBindings...)
	all = append(all, styleBindings...)
	all = append(all, detailBindings...)
	return all
}

func namesOf(bindings []fieldBinding) []string {
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.name)
	}
	return names
}

// CategoryNames は全カテゴリ名を合成順で返します。
func CategoryNames() []string { return namesOf(categoryBindings) }

// CharacterCategoryNames はキャラクターブロックを構成するカテゴリ名を返します。
func CharacterCategoryNames() []string { return namesOf(characterBindings) }

// SceneCategoryNames はシーンブロックを構成するカテゴリ名を返します。
func SceneCategoryNames() []string { return namesOf(sceneBindings) }

// StyleCategoryNames はスタイルブロックを構成するカテゴリ名を返します。
func StyleCategoryNames() []string { return namesOf(styleBindings) }

// DetailCategoryNames は詳細カテゴリ名を宣言順で返します。
func DetailCategoryNames() []string { return namesOf(detailBindings) }

// Category は名前でカテゴリ値を取得します。未知のカテゴリは空文字を返すのだ。
func (o *GenerationOptions) Category(name string) string {
	for _, b := range categoryBindings {
		if b.name == name {
			return b.get(o)
		}
	}
	return ""
}

// SetCategory は名前でカテゴリ値を設定します。未知のカテゴリは黙って無視します。
func (o *GenerationOptions) SetCategory(name, value string) {
	for _, b := range categoryBindings {
		if b.name == name {
			b.set(o, value)
			return
		}
	}
}

// ClearCategories は指定されたカテゴリの値を空にします。
// バッチ生成で varyCategories を再抽選対象に戻すために使用します。
func (o *GenerationOptions) ClearCategories(names []string) {
	for _, name := range names {
		o.SetCategory(name, "")
	}
}

// CategoryValues は値が設定されているカテゴリのみを合成順のキーで返します。
func (o *GenerationOptions) CategoryValues() map[string]string {
	values := make(map[string]string)
	for _, b := range categoryBindings {
		if v := b.get(o); v != "" {
			values[b.name] = v
		}
	}
	return values
}
