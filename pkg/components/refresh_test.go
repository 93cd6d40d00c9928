package components

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// validPayload はデフォルトカテゴリをすべて含む検証通過用のJSONを生成するのだ。
func validPayload(t *testing.T, override map[string][]string) []byte {
	t.Helper()
	arrays := DefaultArrays()
	for key, list := range override {
		arrays[key] = list
	}
	data, err := json.Marshal(arrays)
	if err != nil {
		t.Fatalf("テストデータの生成に失敗しました: %v", err)
	}
	return data
}

func TestCoerceArrays(t *testing.T) {
	t.Run("正常なペイロードを受理すること", func(t *testing.T) {
		payload := validPayload(t, map[string][]string{
			domain.CategoryMood: {"replaced mood"},
		})
		arrays, err := CoerceArrays(payload)
		if err != nil {
			t.Fatalf("正常なペイロードでエラーが発生しました: %v", err)
		}
		if arrays[domain.CategoryMood][0] != "replaced mood" {
			t.Errorf("期待値 'replaced mood', 実際の値 '%s'", arrays[domain.CategoryMood][0])
		}
	})

	t.Run("不正なJSONを拒否すること", func(t *testing.T) {
		if _, err := CoerceArrays([]byte(`{ invalid }`)); err == nil {
			t.Error("不正なJSONでエラーが発生しませんでした")
		}
	})

	t.Run("文字列配列でない値を拒否すること", func(t *testing.T) {
		payload := []byte(`{"mood": "not an array"}`)
		if _, err := CoerceArrays(payload); err == nil {
			t.Error("文字列配列でない値が受理されました")
		}
	})

	t.Run("空のカテゴリを拒否すること", func(t *testing.T) {
		payload := validPayload(t, map[string][]string{domain.CategoryMood: {}})
		if _, err := CoerceArrays(payload); err == nil {
			t.Error("空のカテゴリが受理されました")
		}
	})

	t.Run("空文字だけのカテゴリを拒否すること", func(t *testing.T) {
		payload := validPayload(t, map[string][]string{domain.CategoryMood: {"", ""}})
		if _, err := CoerceArrays(payload); err == nil {
			t.Error("空文字のみのカテゴリが受理されました")
		}
	})

	t.Run("必須カテゴリの欠落を拒否すること", func(t *testing.T) {
		payload := []byte(`{"mood": ["peaceful"]}`)
		if _, err := CoerceArrays(payload); err == nil {
			t.Error("必須カテゴリが欠落したペイロードが受理されました")
		}
	})
}

func TestRefresher_Refresh(t *testing.T) {
	t.Run("成功時にストアが差し替わること", func(t *testing.T) {
		payload := validPayload(t, map[string][]string{
			domain.CategoryMood: {"remote mood"},
		})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(payload)
		}))
		defer server.Close()

		store := NewStore()
		r := NewRefresher(server.URL, 5*time.Second, time.Millisecond, store)
		if err := r.Refresh(context.Background()); err != nil {
			t.Fatalf("更新に失敗しました: %v", err)
		}

		if got := store.List(domain.CategoryMood); len(got) != 1 || got[0] != "remote mood" {
			t.Errorf("リモートデータが反映されていません: %v", got)
		}
	})

	t.Run("失敗時は既存データを維持すること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		store := NewStore()
		before := store.List(domain.CategoryMood)

		r := NewRefresher(server.URL, 5*time.Second, time.Millisecond, store)
		if err := r.Refresh(context.Background()); err == nil {
			t.Error("失敗ステータスでエラーが返されませんでした")
		}

		after := store.List(domain.CategoryMood)
		if len(before) != len(after) {
			t.Error("失敗時にストアが変更されました")
		}
	})

	t.Run("URLが空なら何もしないこと", func(t *testing.T) {
		store := NewStore()
		r := NewRefresher("", 5*time.Second, time.Millisecond, store)
		if err := r.Refresh(context.Background()); err != nil {
			t.Errorf("空URLでエラーが発生しました: %v", err)
		}
	})

	t.Run("成功結果はメモ化され再取得しないこと", func(t *testing.T) {
		var hits atomic.Int64
		payload := validPayload(t, nil)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write(payload)
		}))
		defer server.Close()

		store := NewStore()
		r := NewRefresher(server.URL, 5*time.Second, time.Millisecond, store)

		if err := r.Refresh(context.Background()); err != nil {
			t.Fatalf("1回目の更新に失敗しました: %v", err)
		}
		time.Sleep(5 * time.Millisecond) // レート制限の回復を待つのだ
		if err := r.Refresh(context.Background()); err != nil {
			t.Fatalf("2回目の更新に失敗しました: %v", err)
		}

		if hits.Load() != 1 {
			t.Errorf("メモ化されているはずなのに %d 回取得されました", hits.Load())
		}

		// Invalidate 後は再取得されること
		r.Invalidate()
		time.Sleep(5 * time.Millisecond)
		if err := r.Refresh(context.Background()); err != nil {
			t.Fatalf("Invalidate 後の更新に失敗しました: %v", err)
		}
		if hits.Load() != 2 {
			t.Errorf("Invalidate 後の再取得が行われていません: %d 回", hits.Load())
		}
	})

	t.Run("不正なペイロードではストアが変更されないこと", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"mood": ["only mood"]}`)) // 必須カテゴリ欠落
		}))
		defer server.Close()

		store := NewStore()
		r := NewRefresher(server.URL, 5*time.Second, time.Millisecond, store)
		if err := r.Refresh(context.Background()); err == nil {
			t.Error("不正なペイロードでエラーが返されませんでした")
		}
		if got := store.List(domain.CategoryPlace); len(got) == 0 {
			t.Error("検証失敗時にデフォルトデータが失われました")
		}
	})
}
