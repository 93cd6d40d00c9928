package composer

import (
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/components"
	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// defaultNegativeTerms は品質プリセットが除外タグを一つも提供しない場合の
// 固定フォールバックです。
var defaultNegativeTerms = []string{
	"low quality", "blurry", "pixelated", "distorted", "bad anatomy", "extra limbs",
}

// BuildNegativePrompt は除外リスト（ネガティブプロンプト）を導出します。
//
// enabled が false なら空文字を返します。明示的な NegativePrompt オプションは
// そのまま返します。それ以外は設定済みの品質プリセットの除外タグを
// 初出順・重複なしで収集し、1つも得られなければ固定の6語にフォールバックします。
func BuildNegativePrompt(opts domain.GenerationOptions, data *components.Store, enabled bool) string {
	if !enabled {
		return ""
	}
	if opts.NegativePrompt != "" {
		return opts.NegativePrompt
	}

	seen := make(map[string]struct{})
	var terms []string
	for _, id := range opts.QualityPresetIDs {
		preset, ok := data.QualityPreset(id)
		if !ok {
			continue
		}
		for _, tag := range preset.NegativeTags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			terms = append(terms, tag)
		}
	}

	if len(terms) == 0 {
		terms = defaultNegativeTerms
	}
	return strings.Join(terms, ", ")
}
