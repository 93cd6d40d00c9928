package engine

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/store"
)

// statsTracker は generate 呼び出しごとの集計値を保持し、更新のたびにフラッシュします。
type statsTracker struct {
	kv    store.KeyValueStore
	stats domain.GeneratorStats
}

func newStatsTracker(kv store.KeyValueStore) *statsTracker {
	t := &statsTracker{kv: kv}
	data, ok, err := kv.Get(keyStats)
	if err != nil {
		slog.Warn("統計の読み込みに失敗したため、ゼロから開始します", "error", err)
		return t
	}
	if ok {
		if err := json.Unmarshal(data, &t.stats); err != nil {
			slog.Warn("統計のデコードに失敗したため、ゼロから開始します", "error", err)
			t.stats = domain.GeneratorStats{}
		}
	}
	return t
}

// Record は1回の生成を集計へ反映し、即座にフラッシュします。
// 平均プロンプト長は逐次平均 avg' = (avg*(n-1) + len) / n で更新するのだ。
func (t *statsTracker) Record(opts domain.GenerationOptions, templateID string, promptLen int) {
	t.stats.TotalGenerations++
	t.stats.LastGeneratedAt = time.Now()

	if t.stats.TemplateUsage == nil {
		t.stats.TemplateUsage = make(map[string]int)
	}
	if templateID == "" {
		templateID = domain.TemplateStandard
	}
	t.stats.TemplateUsage[templateID]++

	if t.stats.CategoryUsage == nil {
		t.stats.CategoryUsage = make(map[string]int)
	}
	for name := range opts.CategoryValues() {
		t.stats.CategoryUsage[name]++
	}
	if opts.Custom != "" {
		t.stats.CategoryUsage["custom"]++
	}
	if opts.Character != "" {
		t.stats.CategoryUsage["character"]++
	}

	n := float64(t.stats.TotalGenerations)
	t.stats.AveragePromptLength = (t.stats.AveragePromptLength*(n-1) + float64(promptLen)) / n

	t.flush()
}

// Stats は集計値の防御的コピーを返します。
func (t *statsTracker) Stats() domain.GeneratorStats {
	return t.stats.Clone()
}

// replace は集計値を丸ごと差し替えてフラッシュします（インポート用）。
func (t *statsTracker) replace(stats domain.GeneratorStats) {
	t.stats = stats.Clone()
	t.flush()
}

func (t *statsTracker) flush() {
	data, err := json.Marshal(t.stats)
	if err != nil {
		slog.Warn("統計のエンコードに失敗しました", "error", err)
		return
	}
	if err := t.kv.Set(keyStats, data); err != nil {
		slog.Warn("統計の書き込みに失敗しました。メモリ上の値は維持されるのだ", "error", err)
	}
}
