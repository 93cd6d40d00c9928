// Package engine は、プロンプト合成エンジンの公開ファサードです。
// コンポーザー・フォーマッター・テンプレートエンジン・永続化・統計を束ね、
// generate とプリセット/テンプレートのCRUD、インポート/エクスポートを提供します。
//
// グローバルなシングルトンは持ちません。エンジンはセッションやリクエストごとに
// New で明示的に構築して注入してください。内部に排他制御はないため、
// 1つのインスタンスを並行に共有する場合は呼び出し側で直列化が必要なのだ。
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/shouni/go-prompt-studio/pkg/components"
	"github.com/shouni/go-prompt-studio/pkg/composer"
	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/format"
	"github.com/shouni/go-prompt-studio/pkg/randsrc"
	"github.com/shouni/go-prompt-studio/pkg/store"
)

// デフォルト値の定義
const (
	DefaultRefreshTimeout  = 15 * time.Second
	DefaultRefreshInterval = 30 * time.Second
)

// Config はエンジンの構築パラメータです。
type Config struct {
	// Store は4つのコレクションを保持する永続化ストアです。nil の場合はインメモリになります。
	Store store.KeyValueStore
	// ComponentDataURL はコンポーネントデータの外部更新ソースです。空なら更新しません。
	ComponentDataURL string
	// RefreshTimeout は更新フェッチのタイムアウトです。
	RefreshTimeout time.Duration
	// RefreshInterval は更新フェッチのレート制限間隔です。
	RefreshInterval time.Duration
	// Separator は構成要素の結合区切りです。空なら ", " になります。
	Separator string
	// DisableNegativePrompt が true の場合、ネガティブプロンプトは常に空になります。
	DisableNegativePrompt bool
}

// Engine はプロンプト合成エンジン本体です。
type Engine struct {
	cfg       Config
	data      *components.Store
	refresher *components.Refresher
	formatter *format.Formatter

	presets    *collection[domain.SavedPreset]
	characters *collection[domain.CharacterPreset]
	templates  *collection[domain.RuleTemplate]
	stats      *statsTracker
}

// New はエンジンを構築します。永続化ストアから4コレクションを読み込み、
// コンポーネントデータの非同期更新をベストエフォートで開始します。
func New(cfg Config) *Engine {
	if cfg.Store == nil {
		cfg.Store = store.NewMemory()
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = DefaultRefreshTimeout
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}

	data := components.NewStore()
	e := &Engine{
		cfg:        cfg,
		data:       data,
		refresher:  components.NewRefresher(cfg.ComponentDataURL, cfg.RefreshTimeout, cfg.RefreshInterval, data),
		formatter:  format.NewFormatter(),
		presets:    newPresetCollection(cfg.Store),
		characters: newCharacterCollection(cfg.Store),
		templates:  newTemplateCollection(cfg.Store),
		stats:      newStatsTracker(cfg.Store),
	}

	if cfg.ComponentDataURL != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.RefreshTimeout)
			defer cancel()
			// 失敗はリフレッシャー内でログ済み。デフォルトデータのまま続行するのだ。
			_ = e.refresher.Refresh(ctx)
		}()
	}

	return e
}

// Data はコンポーネントデータストアを返します。
func (e *Engine) Data() *components.Store { return e.data }

// InvalidateComponentData はメモ化された更新結果を破棄します。
func (e *Engine) InvalidateComponentData() { e.refresher.Invalidate() }

// RefreshComponentData は明示的にコンポーネントデータの更新を試みます。
func (e *Engine) RefreshComponentData(ctx context.Context) error {
	return e.refresher.Refresh(ctx)
}

// Generate はオプションからプロンプトを生成します。
// 第2戻り値は助言的な検証警告で、生成を妨げることはありません。
// 整形式のオプションに対して失敗しないことが保証されます。
func (e *Engine) Generate(opts domain.GenerationOptions) (*domain.GeneratedPrompt, []string) {
	warnings := e.Validate(opts)
	prompt := e.compose(opts)
	e.stats.Record(opts, e.resolveTemplateID(opts), len(prompt.Original))
	return prompt, warnings
}

// GenerateRandom は全カテゴリをランダム化して生成します。
func (e *Engine) GenerateRandom(gender string) (*domain.GeneratedPrompt, []string) {
	return e.Generate(domain.GenerationOptions{
		Gender:       gender,
		GlobalOption: domain.GlobalRandom,
	})
}

// GenerateFromPreset は保存済みプリセットをベースに、overrides の明示値を
// 優先して生成します。プリセットが見つからない場合でも失敗せず、
// overrides のみで生成して警告を返すのだ。
// シード未指定の名前付きプリセットは、名前から導出した決定論的シードを使います。
func (e *Engine) GenerateFromPreset(id string, overrides domain.GenerationOptions) (*domain.GeneratedPrompt, []string) {
	preset, ok := e.presets.Load(id)
	if !ok {
		prompt, warnings := e.Generate(overrides)
		warnings = append(warnings, "プリセット '"+id+"' が見つからないため、指定されたオプションのみで生成しました")
		return prompt, warnings
	}

	merged := preset.Options.Merge(overrides)
	if merged.Seed == nil && preset.Name != "" {
		seed := domain.SeedFromName(preset.Name)
		merged.Seed = &seed
	}
	return e.Generate(merged)
}

// GenerateWithCharacter は保存済みキャラクタープリセットの属性を適用して生成します。
// すでに明示されているカテゴリは上書きされません。プリセットが見つからない
// 場合でも失敗せず、適用なしで生成して警告を返すのだ。
func (e *Engine) GenerateWithCharacter(characterID string, opts domain.GenerationOptions) (*domain.GeneratedPrompt, []string) {
	character, ok := e.characters.Load(characterID)
	if !ok {
		prompt, warnings := e.Generate(opts)
		warnings = append(warnings, "キャラクタープリセット '"+characterID+"' が見つからないため、適用せずに生成しました")
		return prompt, warnings
	}
	character.ApplyTo(&opts)
	return e.Generate(opts)
}

// BatchGenerate は count 件のプロンプトを生成します。各アイテムは
// 現在時刻由来のシードに連番を加えた新しいエンジンで生成され、
// varyCategories のカテゴリだけが毎回再抽選されます。
func (e *Engine) BatchGenerate(base domain.GenerationOptions, count int, varyCategories []string) []*domain.GeneratedPrompt {
	if count <= 0 {
		return nil
	}

	// アイテム用エンジンは同じストアを共有しつつ、リモート更新は再実行しない
	itemCfg := e.cfg
	itemCfg.ComponentDataURL = ""

	baseSeed := time.Now().UnixNano()
	results := make([]*domain.GeneratedPrompt, 0, count)
	for i := 0; i < count; i++ {
		item := base.Clone()
		item.ClearCategories(varyCategories)
		item.GlobalOption = domain.GlobalRandom
		seed := baseSeed + int64(i)
		item.Seed = &seed

		sub := New(itemCfg)
		prompt, _ := sub.Generate(item)
		results = append(results, prompt)
	}
	return results
}

// Stats は現在の統計のコピーを返します。
func (e *Engine) Stats() domain.GeneratorStats { return e.stats.Stats() }

// --- コレクションCRUD（3コレクション共通の契約）---

// SavePreset はプリセットをIDでupsertし、即座に永続化します。
func (e *Engine) SavePreset(p domain.SavedPreset) domain.SavedPreset { return e.presets.Save(p) }

// LoadPreset はIDで検索します。見つからない場合は ok=false を返します。
func (e *Engine) LoadPreset(id string) (domain.SavedPreset, bool) { return e.presets.Load(id) }

// DeletePreset は削除の成否を返します。
func (e *Engine) DeletePreset(id string) bool { return e.presets.Delete(id) }

// ListPresets は防御的コピーを返します。
func (e *Engine) ListPresets() []domain.SavedPreset { return e.presets.List() }

// SaveCharacterPreset はキャラクタープリセットをupsertします。
func (e *Engine) SaveCharacterPreset(p domain.CharacterPreset) domain.CharacterPreset {
	return e.characters.Save(p)
}

// LoadCharacterPreset はIDで検索します。
func (e *Engine) LoadCharacterPreset(id string) (domain.CharacterPreset, bool) {
	return e.characters.Load(id)
}

// DeleteCharacterPreset は削除の成否を返します。
func (e *Engine) DeleteCharacterPreset(id string) bool { return e.characters.Delete(id) }

// ListCharacterPresets は防御的コピーを返します。
func (e *Engine) ListCharacterPresets() []domain.CharacterPreset { return e.characters.List() }

// SaveTemplate はルールテンプレートをupsertします。
func (e *Engine) SaveTemplate(t domain.RuleTemplate) domain.RuleTemplate { return e.templates.Save(t) }

// LoadTemplate はIDで検索します。保存済みテンプレートを優先し、
// 見つからなければ組み込みカタログへフォールバックします。
func (e *Engine) LoadTemplate(id string) (domain.RuleTemplate, bool) {
	if t, ok := e.templates.Load(id); ok {
		return t, true
	}
	return e.data.Template(id)
}

// DeleteTemplate は削除の成否を返します。組み込みテンプレートは削除できません。
func (e *Engine) DeleteTemplate(id string) bool { return e.templates.Delete(id) }

// ListTemplates は保存済みテンプレートと組み込みテンプレートを結合して返します。
// 同じIDは保存済み側が優先されます。
func (e *Engine) ListTemplates() []domain.RuleTemplate {
	saved := e.templates.List()
	seen := make(map[string]struct{}, len(saved))
	for _, t := range saved {
		seen[t.ID] = struct{}{}
	}
	for _, t := range e.data.Templates() {
		if _, dup := seen[t.ID]; !dup {
			saved = append(saved, t)
		}
	}
	return saved
}

// --- 内部処理 ---

// compose は合成から方言描画までを同期的に実行します。
func (e *Engine) compose(opts domain.GenerationOptions) *domain.GeneratedPrompt {
	gender := domain.ResolveGender(opts.Gender)
	comp := composer.New(e.data, e.newRNG(opts.Seed), e.cfg.Separator)

	base := comp.Compose(opts, gender)
	negative := composer.BuildNegativePrompt(opts, e.data, !e.cfg.DisableNegativePrompt)

	formats := map[string]string{
		domain.FormatStable:     e.formatter.Stable(base),
		domain.FormatMidjourney: e.formatter.Midjourney(base, opts),
		domain.FormatDALLE:      e.formatter.DALLE(base),
		domain.FormatLongform:   e.formatter.Longform(base, opts),
	}

	// テンプレート駆動フォーマット。組み込みの3種は常に描画するのだ。
	for _, id := range []string{domain.FormatPipeline, domain.FormatNarrative, domain.FormatWildcard} {
		if tmpl, ok := e.LoadTemplate(id); ok {
			formats[id] = format.RenderTemplate(tmpl, base, opts)
		}
	}

	// 選択されたカスタムテンプレート。解決できないIDは基底プロンプトへ退行します。
	if id := opts.TemplateID; id != "" && id != domain.TemplateStandard {
		if _, rendered := formats[id]; !rendered {
			if tmpl, ok := e.LoadTemplate(id); ok {
				formats[id] = format.RenderTemplate(tmpl, base, opts)
			} else {
				formats[id] = base
			}
		}
	}

	return &domain.GeneratedPrompt{
		Original:       base,
		NegativePrompt: negative,
		Formats:        formats,
	}
}

// newRNG はシードの有無に応じて決定論的またはシステム乱数源を返します。
func (e *Engine) newRNG(seed *int64) *randsrc.Source {
	if seed != nil {
		return randsrc.NewSeeded(*seed)
	}
	return randsrc.NewSystem()
}

// resolveTemplateID は統計に記録するテンプレートIDを決定します。
func (e *Engine) resolveTemplateID(opts domain.GenerationOptions) string {
	if strings.TrimSpace(opts.TemplateID) == "" {
		return domain.TemplateStandard
	}
	return opts.TemplateID
}
