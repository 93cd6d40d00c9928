// Package format は、合成済みの基底プロンプトをプラットフォーム別の方言文字列と
// テンプレート駆動の出力へ描画します。すべて入力のみに依存する純関数です。
package format

import (
	"fmt"
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

const (
	// stableQualitySuffix は stable 方言に付与する固定の品質サフィックスです。
	stableQualitySuffix = "masterpiece, best quality, highly detailed"
	// midjourneyVersionFlag は midjourney 方言の固定バージョンフラグです。
	midjourneyVersionFlag = "--v 6"
)

// Formatter は基底プロンプトから名前付き方言文字列を生成します。
type Formatter struct{}

// NewFormatter はフォーマッターを生成します。
func NewFormatter() *Formatter { return &Formatter{} }

// Stable は固定の3タグ品質サフィックスを付与します。
func (f *Formatter) Stable(base string) string {
	return base + ", " + stableQualitySuffix
}

// Midjourney はアスペクト比 → シード → バージョンフラグの順でオプションを付与します。
func (f *Formatter) Midjourney(base string, opts domain.GenerationOptions) string {
	var sb strings.Builder
	sb.WriteString(base)
	if opts.AspectRatio != "" {
		sb.WriteString(" --ar ")
		sb.WriteString(opts.AspectRatio)
	}
	if opts.Seed != nil {
		fmt.Fprintf(&sb, " --seed %d", *opts.Seed)
	}
	sb.WriteString(" ")
	sb.WriteString(midjourneyVersionFlag)
	return sb.String()
}

// DALLE は自然文スタイルにラップします。
func (f *Formatter) DALLE(base string) string {
	return fmt.Sprintf("A %s, professional quality, detailed", base)
}

// Longform は存在するフィールドだけから叙述的な一文を組み立てます。
// どの節も成立しない場合は基底プロンプトを主語に使うのだ。
func (f *Formatter) Longform(base string, opts domain.GenerationOptions) string {
	var clauses []string

	if subject := firstNonEmpty(opts.Subject, opts.DefaultTags); subject != "" {
		clauses = append(clauses, "The image depicts "+subject)
	}
	if opts.Place != "" {
		clauses = append(clauses, "set in "+opts.Place)
	}
	if opts.Lighting != "" {
		clauses = append(clauses, "illuminated by "+opts.Lighting)
	}
	if mood := firstNonEmpty(opts.Mood, opts.Atmosphere); mood != "" {
		clauses = append(clauses, "creating an atmosphere of "+mood)
	}
	if style := firstNonEmpty(opts.Style, opts.Medium); style != "" {
		clauses = append(clauses, "rendered in "+style+" style")
	}

	if len(clauses) == 0 {
		return "The image depicts " + base + "."
	}
	return strings.Join(clauses, ", ") + "."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
