package components

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

const (
	refreshMemoKey   = "component_arrays"
	defaultRateBurst = 1
)

// Refresher は外部ソースからコンポーネントデータを取得してストアへ反映します。
// 失敗時は既存のキャッシュ済みデータを黙って維持し、呼び出し側へは伝播しません。
// 成功結果はプロセス内でメモ化され、Invalidate されるまで再取得しないのだ。
type Refresher struct {
	url     string
	client  *http.Client
	store   *Store
	limiter *rate.Limiter
	group   singleflight.Group
	memo    *cache.Cache

	// gen は更新開始世代。後から開始された更新が常に勝つ（last-started-wins）ための番号なのだ。
	gen atomic.Int64
}

// NewRefresher はリフレッシャーを生成します。url が空の場合、Refresh は何もしません。
// タイムアウトは呼び出し側の責務であり、ctx または timeout 引数で制御します。
func NewRefresher(url string, timeout time.Duration, interval time.Duration, store *Store) *Refresher {
	return &Refresher{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		store:   store,
		limiter: rate.NewLimiter(rate.Every(interval), defaultRateBurst),
		memo:    cache.New(cache.NoExpiration, 0),
	}
}

// Refresh は最新のコンポーネントデータの取得を試みます。ベストエフォートであり、
// 失敗はログに記録した上で nil 以外を返しますが、生成処理を妨げてはいけません。
func (r *Refresher) Refresh(ctx context.Context) error {
	if r.url == "" {
		return nil
	}
	if _, ok := r.memo.Get(refreshMemoKey); ok {
		return nil
	}
	if !r.limiter.Allow() {
		// レート制限中はキャッシュ済みデータのままでよいのだ
		return nil
	}

	myGen := r.gen.Add(1)

	v, err, _ := r.group.Do(refreshMemoKey, func() (interface{}, error) {
		return r.fetch(ctx)
	})
	if err != nil {
		slog.Warn("コンポーネントデータの更新に失敗したため、既存データを維持します",
			"url", r.url, "error", err)
		return err
	}

	// 自分より新しい更新がすでに開始されていたら、この結果は捨てるのだ
	if myGen != r.gen.Load() {
		return nil
	}

	arrays := v.(domain.ComponentDataArrays)
	r.store.Replace(arrays)
	r.memo.Set(refreshMemoKey, true, cache.NoExpiration)
	slog.Info("コンポーネントデータを更新しました", "url", r.url, "categories", len(arrays))
	return nil
}

// Invalidate はメモ化された更新結果を破棄し、次回の Refresh で再取得させます。
func (r *Refresher) Invalidate() {
	r.memo.Delete(refreshMemoKey)
}

func (r *Refresher) fetch(ctx context.Context) (domain.ComponentDataArrays, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("コンポーネントデータの取得に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("コンポーネントデータの取得が失敗ステータスを返しました: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み込みに失敗しました: %w", err)
	}

	return CoerceArrays(body)
}

// CoerceArrays はリモート取得した JSON ドキュメントを検証・変換します。
// 値が文字列配列でないキー、空のカテゴリ、デフォルトカテゴリの欠落は
// 不正な形とみなして全体を拒否します（部分適用はしません）。
func CoerceArrays(data []byte) (domain.ComponentDataArrays, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("コンポーネントデータのパースに失敗しました: %w", err)
	}

	arrays := make(domain.ComponentDataArrays, len(raw))
	for key, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err != nil {
			return nil, fmt.Errorf("カテゴリ '%s' は文字列配列ではありません: %w", key, err)
		}
		cleaned := make([]string, 0, len(list))
		for _, item := range list {
			if item != "" {
				cleaned = append(cleaned, item)
			}
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("カテゴリ '%s' が空です", key)
		}
		arrays[key] = cleaned
	}

	for key := range DefaultArrays() {
		if _, ok := arrays[key]; !ok {
			return nil, fmt.Errorf("必須カテゴリ '%s' が欠落しています", key)
		}
	}

	return arrays, nil
}
