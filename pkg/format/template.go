package format

import (
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// Template は `{name}` プレースホルダを含むパターンの明示的な解析結果です。
// リテラル断片と変数参照の交互列として保持し、正規表現に頼らず
// 単純な走査だけで評価します。
type Template struct {
	segments []segment
}

type segmentKind int

const (
	segLiteral segmentKind = iota
	segVariable
)

type segment struct {
	kind segmentKind
	text string // リテラル本文、または変数名
}

// ParseTemplate はパターン文字列を解析します。閉じ括弧のない `{` は
// リテラルとして扱い、解析は失敗しません。
func ParseTemplate(pattern string) Template {
	var segs []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segs = append(segs, segment{kind: segLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '{' {
			end := strings.IndexByte(pattern[i:], '}')
			if end > 1 {
				flush()
				name := strings.TrimSpace(pattern[i+1 : i+end])
				segs = append(segs, segment{kind: segVariable, text: name})
				i += end + 1
				continue
			}
		}
		literal.WriteByte(pattern[i])
		i++
	}
	flush()

	return Template{segments: segs}
}

// Variables はテンプレートが参照する変数名を出現順で返します。
func (t Template) Variables() []string {
	var names []string
	for _, s := range t.segments {
		if s.kind == segVariable {
			names = append(names, s.text)
		}
	}
	return names
}

// Render はコンテキストの値で変数を置換し、後処理として空になった
// 括弧グループの除去と空白の正規化を行います。
// 結果が空になった場合のフォールバックは呼び出し側（RenderTemplate）の責務です。
func (t Template) Render(ctx map[string]string) string {
	var sb strings.Builder
	for _, s := range t.segments {
		switch s.kind {
		case segLiteral:
			sb.WriteString(s.text)
		case segVariable:
			sb.WriteString(ctx[s.text])
		}
	}
	cleaned := removeEmptyGroups(sb.String())
	return strings.Join(strings.Fields(cleaned), " ")
}

// removeEmptyGroups は `[ a | b ]` 形式の括弧グループのうち、置換後に
// 区切り記号と空白しか残らなかったものを丸ごと取り除きます。
// 中身のあるグループはそのまま維持します。
func removeEmptyGroups(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '[' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			sb.WriteString(s[i:])
			break
		}
		group := s[i : i+end+1]
		if !groupIsEmpty(group) {
			sb.WriteString(group)
		}
		i += end + 1
	}
	return sb.String()
}

// groupIsEmpty は括弧グループの中身が区切り記号（| と ,）および空白だけかを判定します。
func groupIsEmpty(group string) bool {
	interior := strings.Trim(group, "[]")
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '|', ',', ' ', '\t', '\n':
			return -1
		}
		return r
	}, interior)
	return stripped == ""
}

// RenderTemplate はルールテンプレートを基底プロンプトとオプションに適用します。
// パターンが空、テンプレートIDが解決できない等で出力が空になる場合は、
// 基底プロンプトを無加工で返します（グレースフルデグラデーション）。
func RenderTemplate(tmpl domain.RuleTemplate, base string, opts domain.GenerationOptions) string {
	pattern := tmpl.Pattern()
	if pattern == "" {
		return base
	}
	rendered := ParseTemplate(pattern).Render(BuildContext(base, opts))
	if rendered == "" {
		return base
	}
	return rendered
}
