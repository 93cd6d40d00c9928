package engine

import (
	"slices"
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// Validate はオプションの組み合わせを検査し、助言的な警告を返します。
// 警告は生成をブロックしません。整合しない組み合わせでも生成は続行されるのだ。
func (e *Engine) Validate(opts domain.GenerationOptions) []string {
	var warnings []string

	if opts.GlobalOption == domain.GlobalNoFigureRandom {
		var conflicting []string
		for _, name := range domain.CharacterCategoryNames() {
			// 明示的なポーズは人物抑制時も出力に通るため、矛盾ではないのだ
			if name == domain.CategoryPose {
				continue
			}
			if opts.Category(name) != "" {
				conflicting = append(conflicting, name)
			}
		}
		if opts.Character != "" {
			conflicting = append(conflicting, "character")
		}
		if len(conflicting) > 0 {
			warnings = append(warnings,
				"no_figure_random モードではキャラクター属性は出力に含まれません: "+strings.Join(conflicting, ", "))
		}
	}

	for _, id := range opts.QualityPresetIDs {
		if _, ok := e.data.QualityPreset(id); !ok {
			warnings = append(warnings, "品質プリセット '"+id+"' は未登録のため無視されます")
		}
	}

	if id := opts.TemplateID; id != "" && id != domain.TemplateStandard {
		if _, ok := e.LoadTemplate(id); !ok {
			warnings = append(warnings, "テンプレート '"+id+"' は解決できないため、基底プロンプトをそのまま使用します")
		}
	}

	if ratio := opts.AspectRatio; ratio != "" {
		if !slices.Contains(e.data.AspectRatios(), ratio) {
			warnings = append(warnings, "アスペクト比 '"+ratio+"' はカタログ外の値です")
		}
	}

	return warnings
}
