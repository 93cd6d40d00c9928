package domain

import "time"

// QualityPreset はプロンプト末尾に付与する品質タグの組を定義します。
type QualityPreset struct {
	ID           string   `json:"id"`
	Tags         []string `json:"tags"`
	NegativeTags []string `json:"negative_tags,omitempty"`
	Weight       float64  `json:"weight,omitempty"`
	Default      bool     `json:"default,omitempty"`
}

// RuleTemplate はプレースホルダ置換で出力を組み立てる再利用可能なパターンです。
// FormatTemplate が空でない場合は Template より優先されます。
type RuleTemplate struct {
	ID             string   `json:"id"`
	Template       string   `json:"template"`
	FormatTemplate string   `json:"format_template,omitempty"`
	Rules          []string `json:"rules,omitempty"`
	Notes          string   `json:"notes,omitempty"`

	// LLMルーティング情報。本エンジンでは解釈せず、下流の拡張レイヤーにそのまま渡すのだ。
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Compress bool   `json:"compress,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Pattern は置換に使用するパターン文字列を返します。
func (t RuleTemplate) Pattern() string {
	if t.FormatTemplate != "" {
		return t.FormatTemplate
	}
	return t.Template
}

// SavedPreset は名前付きで保存された GenerationOptions の束です。
type SavedPreset struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Options   GenerationOptions `json:"options"`
	Favorite  bool              `json:"favorite,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at,omitempty"`
}

// CharacterPreset は名前付きで保存されたキャラクター属性値の束です。
// Attributes のキーはカテゴリ名（hairstyle, clothing 等）です。
type CharacterPreset struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
	Favorite   bool              `json:"favorite,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
}

// ApplyTo はキャラクタープリセットの属性値をオプションへ反映します。
// すでに明示されているカテゴリは上書きしません。
func (c CharacterPreset) ApplyTo(opts *GenerationOptions) {
	for name, value := range c.Attributes {
		if value == "" {
			continue
		}
		if opts.Category(name) == "" {
			opts.SetCategory(name, value)
		}
	}
}
