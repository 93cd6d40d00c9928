package engine

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/store"
)

// 永続化ストア上のコレクションごとのキーです。
const (
	keyPresets    = "prompt_presets"
	keyCharacters = "character_presets"
	keyTemplates  = "rule_templates"
	keyStats      = "generator_stats"
)

// collection は3つのコレクション（プリセット・キャラクター・テンプレート）に
// 共通のCRUD契約を提供します。すべての変更は即座にストアへ全量フラッシュされ、
// 書き込み失敗はログに記録しつつメモリ上の状態を正とします。
type collection[T any] struct {
	key   string
	kv    store.KeyValueStore
	items []T

	id    func(*T) string
	setID func(*T, string)
	stamp func(*T, time.Time, bool) // isNew=true なら CreatedAt、false なら UpdatedAt
}

// load はストアからコレクションを読み込みます。キーの欠落は空のコレクションとして扱います。
func (c *collection[T]) load() {
	data, ok, err := c.kv.Get(c.key)
	if err != nil {
		slog.Warn("コレクションの読み込みに失敗したため、空の状態で開始します",
			"key", c.key, "error", err)
		return
	}
	if !ok {
		return
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("コレクションのデコードに失敗したため、空の状態で開始します",
			"key", c.key, "error", err)
		return
	}
	c.items = items
}

// flush はコレクション全体をストアへ書き出します。失敗しても巻き戻しません。
func (c *collection[T]) flush() {
	data, err := json.Marshal(c.items)
	if err != nil {
		slog.Warn("コレクションのエンコードに失敗しました", "key", c.key, "error", err)
		return
	}
	if err := c.kv.Set(c.key, data); err != nil {
		slog.Warn("コレクションの書き込みに失敗しました。メモリ上の状態は維持されますが、永続化は保証されないのだ",
			"key", c.key, "error", err)
	}
}

// Save はIDによるupsertです。既存エントリは置き換えて UpdatedAt を、
// 新規エントリは（IDが空なら採番した上で）CreatedAt を設定し、即座にフラッシュします。
func (c *collection[T]) Save(item T) T {
	now := time.Now()
	if c.id(&item) == "" {
		c.setID(&item, uuid.NewString())
	}
	for i := range c.items {
		if c.id(&c.items[i]) == c.id(&item) {
			c.stamp(&item, now, false)
			c.items[i] = item
			c.flush()
			return item
		}
	}
	c.stamp(&item, now, true)
	c.items = append(c.items, item)
	c.flush()
	return item
}

// Load はIDで検索します。見つからない場合は ok=false を返し、エラーにはしません。
func (c *collection[T]) Load(id string) (T, bool) {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete は最初に一致したエントリを取り除き、取り除けたかどうかを返します。
// 成功時のみフラッシュします。
func (c *collection[T]) Delete(id string) bool {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.flush()
			return true
		}
	}
	return false
}

// List はコレクションの防御的コピーを返します。
func (c *collection[T]) List() []T {
	return append([]T(nil), c.items...)
}

// replaceAll はコレクション全体を差し替えてフラッシュします（インポート用）。
func (c *collection[T]) replaceAll(items []T) {
	c.items = append([]T(nil), items...)
	c.flush()
}

func newPresetCollection(kv store.KeyValueStore) *collection[domain.SavedPreset] {
	c := &collection[domain.SavedPreset]{
		key:   keyPresets,
		kv:    kv,
		id:    func(p *domain.SavedPreset) string { return p.ID },
		setID: func(p *domain.SavedPreset, id string) { p.ID = id },
		stamp: func(p *domain.SavedPreset, t time.Time, isNew bool) {
			if isNew {
				p.CreatedAt = t
			} else {
				p.UpdatedAt = t
			}
		},
	}
	c.load()
	return c
}

func newCharacterCollection(kv store.KeyValueStore) *collection[domain.CharacterPreset] {
	c := &collection[domain.CharacterPreset]{
		key:   keyCharacters,
		kv:    kv,
		id:    func(p *domain.CharacterPreset) string { return p.ID },
		setID: func(p *domain.CharacterPreset, id string) { p.ID = id },
		stamp: func(p *domain.CharacterPreset, t time.Time, isNew bool) {
			if isNew {
				p.CreatedAt = t
			} else {
				p.UpdatedAt = t
			}
		},
	}
	c.load()
	return c
}

func newTemplateCollection(kv store.KeyValueStore) *collection[domain.RuleTemplate] {
	c := &collection[domain.RuleTemplate]{
		key:   keyTemplates,
		kv:    kv,
		id:    func(t *domain.RuleTemplate) string { return t.ID },
		setID: func(t *domain.RuleTemplate, id string) { t.ID = id },
		stamp: func(t *domain.RuleTemplate, at time.Time, isNew bool) {
			if isNew {
				t.CreatedAt = at
			} else {
				t.UpdatedAt = at
			}
		},
	}
	c.load()
	return c
}
