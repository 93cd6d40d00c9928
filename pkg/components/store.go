// Package components は、プロンプト合成の候補となるカテゴリ別文字列データと、
// そのリモート更新を管理します。
package components

import (
	"sync"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// Store はカテゴリ別候補データの現在のスナップショットを保持します。
// 生成処理は常にこのキャッシュ済みスナップショットを参照し、
// リモート更新（Refresher）は Replace で丸ごと差し替えるのだ。
type Store struct {
	mu      sync.RWMutex
	arrays  domain.ComponentDataArrays
	quality []domain.QualityPreset
	tmpls   []domain.RuleTemplate
	ratios  []string
}

// NewStore は組み込みデフォルトで初期化されたストアを生成します。
func NewStore() *Store {
	return &Store{
		arrays:  DefaultArrays(),
		quality: DefaultQualityPresets(),
		tmpls:   DefaultTemplates(),
		ratios:  DefaultAspectRatios(),
	}
}

// Arrays は現在の配列データの防御的コピーを返します。
func (s *Store) Arrays() domain.ComponentDataArrays {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arrays.Clone()
}

// List は指定カテゴリの候補リストを返します。未知のカテゴリは nil を返します。
func (s *Store) List(category string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.arrays[category]
	if !ok {
		return nil
	}
	copied := make([]string, len(list))
	copy(copied, list)
	return copied
}

// Gendered は性別分割されたカテゴリの候補を返します。
// 該当する性別のリストと neutral のリストを結合し、分割キーが存在しない
// カテゴリでは素のリストへフォールバックします。
func (s *Store) Gendered(category, gender string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gendered, hasGendered := s.arrays[domain.GenderedKey(category, gender)]
	neutral, hasNeutral := s.arrays[domain.GenderedKey(category, domain.GenderNeutral)]
	if !hasGendered && !hasNeutral {
		plain := s.arrays[category]
		return append([]string(nil), plain...)
	}

	combined := make([]string, 0, len(gendered)+len(neutral))
	combined = append(combined, gendered...)
	if gender != domain.GenderNeutral {
		combined = append(combined, neutral...)
	}
	return combined
}

// QualityPreset はIDで品質プリセットを検索します。見つからない場合は false を返します。
func (s *Store) QualityPreset(id string) (domain.QualityPreset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.quality {
		if p.ID == id {
			return p, true
		}
	}
	return domain.QualityPreset{}, false
}

// QualityPresets は品質プリセットカタログ全体のコピーを返します。
func (s *Store) QualityPresets() []domain.QualityPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.QualityPreset(nil), s.quality...)
}

// Template はIDで組み込みテンプレートを検索します。
func (s *Store) Template(id string) (domain.RuleTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tmpls {
		if t.ID == id {
			return t, true
		}
	}
	return domain.RuleTemplate{}, false
}

// Templates は組み込みテンプレートカタログ全体のコピーを返します。
func (s *Store) Templates() []domain.RuleTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RuleTemplate(nil), s.tmpls...)
}

// AspectRatios は対応アスペクト比のコピーを返します。
func (s *Store) AspectRatios() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ratios...)
}

// Replace は配列データを丸ごと差し替えます。リモート更新の成功時のみ呼ばれます。
func (s *Store) Replace(arrays domain.ComponentDataArrays) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arrays = arrays.Clone()
}

// Reset は配列データを組み込みデフォルトへ戻します。
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arrays = DefaultArrays()
}
