// Package composer は、選択オプションと性別条件からプロンプトの構成要素を
// 固定の優先順位で組み立てます。ここの関数はすべて同期的な純関数であり、
// 乱数源とデータストアのスナップショット以外の状態を持ちません。
package composer

import (
	"strings"

	"github.com/shouni/go-prompt-studio/pkg/components"
	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/randsrc"
)

// DefaultSeparator は構成要素の既定の結合区切りです。
const DefaultSeparator = ", "

// Composer はコンポーネントデータと乱数源からプロンプト構成要素を構築します。
type Composer struct {
	data      *components.Store
	rng       *randsrc.Source
	separator string
}

// New はコンポーザーを生成します。separator が空の場合は DefaultSeparator を使用します。
func New(data *components.Store, rng *randsrc.Source, separator string) *Composer {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Composer{data: data, rng: rng, separator: separator}
}

// Separator は構成要素の結合区切りを返します。
func (c *Composer) Separator() string { return c.separator }

// Compose は構成要素を組み立てて区切り文字で結合した基底プロンプトを返します。
func (c *Composer) Compose(opts domain.GenerationOptions, gender string) string {
	return strings.Join(c.BuildPromptComponents(opts, gender), c.separator)
}

// BuildPromptComponents は固定の優先順位で空でない構成要素のリストを構築します。
//
// 順序: custom → subject → キャラクターブロック → シーンブロック → スタイルブロック
// → 詳細カテゴリ（宣言順）→ 品質プリセットタグ。
//
// ランダム化モードは2つの明示的な真偽値に正規化します:
//   - includeCharacter: no_figure_random のときのみ false（キャラクターブロック全体を抑制）
//   - randomizeScene: random / no_figure_random でシーン・スタイル・詳細カテゴリを補完
//
// subject と pose は人物に結びつくため、no_figure_random ではランダム化しません。
// ただし明示的な pose は構図の指定でもあるため、キャラクターブロックの
// 抑制後もそのまま通過します。明示的に指定された値は常にランダム化より優先されます。
// accessory のランダム化は2点を重複なしで選んで結合します。
func (c *Composer) BuildPromptComponents(opts domain.GenerationOptions, gender string) []string {
	gender = domain.ResolveGender(gender)

	randomizeAll := opts.GlobalOption == domain.GlobalRandom
	randomizeScene := randomizeAll || opts.GlobalOption == domain.GlobalNoFigureRandom
	includeCharacter := opts.GlobalOption != domain.GlobalNoFigureRandom

	var parts []string
	add := func(v string) {
		if s := strings.TrimSpace(v); s != "" {
			parts = append(parts, s)
		}
	}

	// 1. 自由入力
	add(opts.Custom)

	// 2. 主題
	subject := opts.Subject
	if subject == "" && randomizeAll {
		subject = c.rng.Pick(c.data.List(domain.CategorySubject))
	}
	add(subject)

	// 3. キャラクターブロック
	if includeCharacter {
		add(opts.Character)
		for _, name := range domain.CharacterCategoryNames() {
			// 化粧は female / neutral のときだけ含めるのだ
			if name == domain.CategoryMakeup && gender == domain.GenderMale {
				continue
			}
			value := opts.Category(name)
			if value == "" && randomizeAll {
				if name == domain.CategoryAccessory {
					value = strings.Join(c.rng.PickN(c.data.Gendered(name, gender), 2), " and ")
				} else {
					value = c.rng.Pick(c.data.Gendered(name, gender))
				}
			}
			add(value)
		}
	} else {
		// 明示的なポーズだけは人物抑制時も通すのだ
		add(opts.Pose)
	}

	// 4. シーン / 環境ブロック
	for _, name := range domain.SceneCategoryNames() {
		add(c.resolve(opts, name, randomizeScene))
	}

	// 5. スタイル / 芸術ブロック
	for _, name := range domain.StyleCategoryNames() {
		add(c.resolve(opts, name, randomizeScene))
	}

	// 6. 詳細カテゴリ（宣言順）
	for _, name := range domain.DetailCategoryNames() {
		add(c.resolve(opts, name, randomizeScene))
	}

	// 7. 品質プリセットタグは常に最後
	for _, id := range opts.QualityPresetIDs {
		preset, ok := c.data.QualityPreset(id)
		if !ok {
			continue
		}
		for _, tag := range preset.Tags {
			add(tag)
		}
	}

	return parts
}

func (c *Composer) resolve(opts domain.GenerationOptions, category string, randomize bool) string {
	value := opts.Category(category)
	if value == "" && randomize {
		value = c.rng.Pick(c.data.List(category))
	}
	return value
}
