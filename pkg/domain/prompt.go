package domain

import "time"

// 方言（フォーマット）名の定数です。GeneratedPrompt.Formats のキーとして使用します。
const (
	FormatStable     = "stable"
	FormatMidjourney = "midjourney"
	FormatDALLE      = "dalle"
	FormatLongform   = "longform"
	FormatPipeline   = "pipeline"
	FormatNarrative  = "narrative"
	FormatWildcard   = "wildcard"
	FormatCustom     = "custom"
)

// TemplateStandard はテンプレート未選択時に統計へ記録される既定のテンプレートIDです。
const TemplateStandard = "standard"

// GeneratedPrompt は1回の生成結果です。Formats は方言名・テンプレートIDをキーにした
// 開放的なマップで、対応する出力文字列を保持します。
type GeneratedPrompt struct {
	Original       string            `json:"original"`
	NegativePrompt string            `json:"negative_prompt"`
	Formats        map[string]string `json:"formats"`
}

// Format は名前付き出力を取得します。未登録の名前は Original を返すのだ。
func (p *GeneratedPrompt) Format(name string) string {
	if p.Formats != nil {
		if s, ok := p.Formats[name]; ok {
			return s
		}
	}
	return p.Original
}

// GeneratorStats は generate 呼び出しごとに更新される集計値です。
type GeneratorStats struct {
	TotalGenerations    int            `json:"total_generations"`
	TemplateUsage       map[string]int `json:"template_usage"`
	CategoryUsage       map[string]int `json:"category_usage"`
	AveragePromptLength float64        `json:"average_prompt_length"`
	LastGeneratedAt     time.Time      `json:"last_generated_at"`
}

// Clone は統計の防御的コピーを返します。
func (s GeneratorStats) Clone() GeneratorStats {
	copied := s
	copied.TemplateUsage = copyCountMap(s.TemplateUsage)
	copied.CategoryUsage = copyCountMap(s.CategoryUsage)
	return copied
}

func copyCountMap(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	copied := make(map[string]int, len(src))
	for k, v := range src {
		copied[k] = v
	}
	return copied
}

// ComponentDataArrays はカテゴリ名から候補文字列リストへのマッピングです。
// 一部のカテゴリは clothing_female / clothing_male / clothing_neutral のように
// 性別で分割されたキーを持ちます。
type ComponentDataArrays map[string][]string

// Clone は配列マップの防御的コピーを返します。
func (a ComponentDataArrays) Clone() ComponentDataArrays {
	if a == nil {
		return nil
	}
	copied := make(ComponentDataArrays, len(a))
	for k, v := range a {
		list := make([]string, len(v))
		copy(list, v)
		copied[k] = list
	}
	return copied
}

// GenderedKey は性別分割されたカテゴリのキーを組み立てます。
func GenderedKey(category, gender string) string {
	return category + "_" + gender
}
