package domain

// GlobalOption は生成時のランダム化モードを表します。
type GlobalOption string

const (
	// GlobalDisabled はランダム化を行わず、明示された値のみを使用するモードです。
	GlobalDisabled GlobalOption = "disabled"
	// GlobalRandom は未指定のカテゴリをすべてランダムに補完するモードです。
	GlobalRandom GlobalOption = "random"
	// GlobalNoFigureRandom は人物ブロックを抑制しつつ、シーン系カテゴリのみをランダム化するモードです。
	GlobalNoFigureRandom GlobalOption = "no_figure_random"
)

// 性別の正規化値なのだ。未指定は GenderNeutral に解決されるのだ。
const (
	GenderFemale  = "female"
	GenderMale    = "male"
	GenderNeutral = "neutral"
)

// ResolveGender は入力された性別文字列を正規化します。
// 未知の値・空文字はすべて neutral として扱います。
func ResolveGender(gender string) string {
	switch gender {
	case GenderFemale, GenderMale:
		return gender
	default:
		return GenderNeutral
	}
}

// GenerationOptions はプロンプト生成の要求内容を保持する疎な構造体です。
// 値が空のフィールドは「未指定」を意味し、モードによってはランダム化の候補になります。
type GenerationOptions struct {
	// --- 自由入力 ---
	Custom  string `json:"custom,omitempty"`
	Subject string `json:"subject,omitempty"`

	// --- モード制御 ---
	Gender       string       `json:"gender,omitempty"`
	GlobalOption GlobalOption `json:"global_option,omitempty"`

	// --- キャラクター属性 ---
	Character  string `json:"character,omitempty"`
	Hairstyle  string `json:"hairstyle,omitempty"`
	HairColor  string `json:"hair_color,omitempty"`
	EyeColor   string `json:"eye_color,omitempty"`
	BodyType   string `json:"body_type,omitempty"`
	Clothing   string `json:"clothing,omitempty"`
	Expression string `json:"expression,omitempty"`
	Pose       string `json:"pose,omitempty"`
	Makeup     string `json:"makeup,omitempty"`
	Accessory  string `json:"accessory,omitempty"`

	// --- シーン / 環境 ---
	Place     string `json:"place,omitempty"`
	Lighting  string `json:"lighting,omitempty"`
	Weather   string `json:"weather,omitempty"`
	Season    string `json:"season,omitempty"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Mood      string `json:"mood,omitempty"`

	// --- スタイル / 芸術 ---
	Style  string `json:"style,omitempty"`
	Artist string `json:"artist,omitempty"`

	// --- 詳細カテゴリ（宣言順がそのまま合成順になります）---
	ColorPalette string `json:"color_palette,omitempty"`
	Texture      string `json:"texture,omitempty"`
	Composition  string `json:"composition,omitempty"`
	CameraAngle  string `json:"camera_angle,omitempty"`
	CameraLens   string `json:"camera_lens,omitempty"`
	DepthOfField string `json:"depth_of_field,omitempty"`
	Era          string `json:"era,omitempty"`
	Atmosphere   string `json:"atmosphere,omitempty"`
	Material     string `json:"material,omitempty"`
	Pattern      string `json:"pattern,omitempty"`
	Detail       string `json:"detail,omitempty"`
	Contrast     string `json:"contrast,omitempty"`
	Framing      string `json:"framing,omitempty"`
	Perspective  string `json:"perspective,omitempty"`
	Background   string `json:"background,omitempty"`
	Foreground   string `json:"foreground,omitempty"`
	Medium       string `json:"medium,omitempty"`
	Finish       string `json:"finish,omitempty"`
	Effect       string `json:"effect,omitempty"`
	Ornament     string `json:"ornament,omitempty"`

	// --- 品質・テンプレート・出力制御 ---
	QualityPresetIDs []string `json:"quality_preset_ids,omitempty"`
	TemplateID       string   `json:"template_id,omitempty"`
	NegativePrompt   string   `json:"negative_prompt,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	AspectRatio      string   `json:"aspect_ratio,omitempty"`
	DefaultTags      string   `json:"default_tags,omitempty"`
}

// Clone はオプションの防御的コピーを返します。スライスとポインタも複製するのだ。
func (o GenerationOptions) Clone() GenerationOptions {
	copied := o
	if o.QualityPresetIDs != nil {
		copied.QualityPresetIDs = make([]string, len(o.QualityPresetIDs))
		copy(copied.QualityPresetIDs, o.QualityPresetIDs)
	}
	if o.Seed != nil {
		seed := *o.Seed
		copied.Seed = &seed
	}
	return copied
}

// Merge は override の空でないフィールドを o に上書きした結果を返します。
// プリセットからの生成時、呼び出し側の明示指定を優先するために使用します。
func (o GenerationOptions) Merge(override GenerationOptions) GenerationOptions {
	merged := o.Clone()
	for _, b := range categoryBindings {
		if v := b.get(&override); v != "" {
			b.set(&merged, v)
		}
	}
	if override.Custom != "" {
		merged.Custom = override.Custom
	}
	if override.Character != "" {
		merged.Character = override.Character
	}
	if override.Gender != "" {
		merged.Gender = override.Gender
	}
	if override.GlobalOption != "" {
		merged.GlobalOption = override.GlobalOption
	}
	if len(override.QualityPresetIDs) > 0 {
		merged.QualityPresetIDs = append([]string(nil), override.QualityPresetIDs...)
	}
	if override.TemplateID != "" {
		merged.TemplateID = override.TemplateID
	}
	if override.NegativePrompt != "" {
		merged.NegativePrompt = override.NegativePrompt
	}
	if override.Seed != nil {
		seed := *override.Seed
		merged.Seed = &seed
	}
	if override.AspectRatio != "" {
		merged.AspectRatio = override.AspectRatio
	}
	if override.DefaultTags != "" {
		merged.DefaultTags = override.DefaultTags
	}
	return merged
}
