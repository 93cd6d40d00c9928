package format

import (
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// ContextVariables はテンプレートコンテキストに常に存在する変数名の一覧です。
// プレースホルダ完全性のテストで使用します。
var ContextVariables = []string{
	"prompt", "subject", "character", "style", "mood", "setting", "lighting",
	"composition", "quality", "artist", "pose", "clothing", "camera", "attributes",
}

// BuildContext は基底プロンプトとオプションからテンプレート変数のマップを構築します。
// 値が存在しない変数は空文字になります。
func BuildContext(base string, opts domain.GenerationOptions) map[string]string {
	return map[string]string{
		"prompt":      base,
		"subject":     opts.Subject,
		"character":   opts.Character,
		"style":       opts.Style,
		"mood":        opts.Mood,
		"setting":     opts.Place,
		"lighting":    opts.Lighting,
		"composition": opts.Composition,
		"quality":     strings.Join(opts.QualityPresetIDs, ", "),
		"artist":      opts.Artist,
		"pose":        opts.Pose,
		"clothing":    opts.Clothing,
		"camera":      firstNonEmpty(opts.CameraAngle, opts.CameraLens),
		"attributes":  joinPresent(opts.BodyType, opts.Hairstyle, opts.EyeColor),
	}
}

// joinPresent は空でない値だけをカンマで結合します。
func joinPresent(values ...string) string {
	var present []string
	for _, v := range values {
		if v != "" {
			present = append(present, v)
		}
	}
	return strings.Join(present, ", ")
}
