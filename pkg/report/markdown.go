// Package report は、生成結果を構造化された Markdown 形式で出力する役割を担います。
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// Markdown は複数の生成結果を1つの Markdown 文書にまとめます。
// バッチ生成の出力ファイルとして使用するのだ。
func Markdown(title string, prompts []*domain.GeneratedPrompt) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	for i, p := range prompts {
		sb.WriteString(fmt.Sprintf("## Prompt %d\n\n", i+1))
		sb.WriteString(fmt.Sprintf("```\n%s\n```\n\n", p.Original))

		if p.NegativePrompt != "" {
			sb.WriteString(fmt.Sprintf("- negative: %s\n", p.NegativePrompt))
		}

		// 方言出力はキー順で安定させるのだ
		names := make([]string, 0, len(p.Formats))
		for name := range p.Formats {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", name, p.Formats[name]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
