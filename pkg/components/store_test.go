package components

import (
	"testing"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

func TestDefaultArrays_Invariants(t *testing.T) {
	arrays := DefaultArrays()

	t.Run("すべてのカテゴリが空でないこと", func(t *testing.T) {
		for key, list := range arrays {
			if len(list) == 0 {
				t.Errorf("カテゴリ '%s' が空です", key)
			}
			for _, item := range list {
				if item == "" {
					t.Errorf("カテゴリ '%s' に空文字が含まれています", key)
				}
			}
		}
	})

	t.Run("性別分割カテゴリは3キーすべて揃っていること", func(t *testing.T) {
		for _, category := range []string{domain.CategoryHairstyle, domain.CategoryClothing} {
			for _, gender := range []string{domain.GenderFemale, domain.GenderMale, domain.GenderNeutral} {
				key := domain.GenderedKey(category, gender)
				if len(arrays[key]) == 0 {
					t.Errorf("性別分割キー '%s' が欠落しています", key)
				}
			}
		}
	})
}

func TestDefaultQualityPresets(t *testing.T) {
	presets := DefaultQualityPresets()

	var defaultCount int
	for _, p := range presets {
		if p.ID == "" {
			t.Error("IDのない品質プリセットがあります")
		}
		if len(p.Tags) == 0 {
			t.Errorf("品質プリセット '%s' にタグがありません", p.ID)
		}
		if p.Default {
			defaultCount++
		}
	}
	if defaultCount != 1 {
		t.Errorf("デフォルトの品質プリセットは1つであるべきです: 実際の値 %d", defaultCount)
	}
}

func TestStore_List(t *testing.T) {
	s := NewStore()

	t.Run("既知のカテゴリはコピーを返すこと", func(t *testing.T) {
		list := s.List(domain.CategoryMood)
		if len(list) == 0 {
			t.Fatal("mood カテゴリが空です")
		}
		list[0] = "mutated"
		if s.List(domain.CategoryMood)[0] == "mutated" {
			t.Error("返されたスライスの変更がストアに波及しました")
		}
	})

	t.Run("未知のカテゴリは nil を返すこと", func(t *testing.T) {
		if got := s.List("nonexistent"); got != nil {
			t.Errorf("期待値 nil, 実際の値 %v", got)
		}
	})
}

func TestStore_Gendered(t *testing.T) {
	s := NewStore()

	t.Run("female は female + neutral の結合になること", func(t *testing.T) {
		combined := s.Gendered(domain.CategoryClothing, domain.GenderFemale)
		female := s.List(domain.GenderedKey(domain.CategoryClothing, domain.GenderFemale))
		neutral := s.List(domain.GenderedKey(domain.CategoryClothing, domain.GenderNeutral))
		if len(combined) != len(female)+len(neutral) {
			t.Errorf("期待値 %d件, 実際の値 %d件", len(female)+len(neutral), len(combined))
		}
	})

	t.Run("male の候補に female 専用の衣装が含まれないこと", func(t *testing.T) {
		male := s.Gendered(domain.CategoryClothing, domain.GenderMale)
		female := s.List(domain.GenderedKey(domain.CategoryClothing, domain.GenderFemale))
		femaleSet := make(map[string]struct{}, len(female))
		for _, v := range female {
			femaleSet[v] = struct{}{}
		}
		for _, v := range male {
			if _, found := femaleSet[v]; found {
				t.Errorf("male の候補に female 専用の値 '%s' が含まれています", v)
			}
		}
	})

	t.Run("neutral は neutral キーのみを返すこと", func(t *testing.T) {
		got := s.Gendered(domain.CategoryHairstyle, domain.GenderNeutral)
		neutral := s.List(domain.GenderedKey(domain.CategoryHairstyle, domain.GenderNeutral))
		if len(got) != len(neutral) {
			t.Errorf("期待値 %d件, 実際の値 %d件", len(neutral), len(got))
		}
	})

	t.Run("分割キーのないカテゴリは素のリストへフォールバックすること", func(t *testing.T) {
		got := s.Gendered(domain.CategoryPlace, domain.GenderFemale)
		plain := s.List(domain.CategoryPlace)
		if len(got) != len(plain) {
			t.Errorf("期待値 %d件, 実際の値 %d件", len(plain), len(got))
		}
	})
}

func TestStore_QualityPreset(t *testing.T) {
	s := NewStore()

	preset, ok := s.QualityPreset("masterpiece")
	if !ok {
		t.Fatal("組み込みの品質プリセット 'masterpiece' が見つかりません")
	}
	if len(preset.NegativeTags) == 0 {
		t.Error("masterpiece には除外タグがあるはずです")
	}

	if _, ok := s.QualityPreset("nonexistent"); ok {
		t.Error("未知のIDで ok=true が返されました")
	}
}

func TestStore_ReplaceAndReset(t *testing.T) {
	s := NewStore()
	custom := domain.ComponentDataArrays{domain.CategoryMood: {"only mood"}}

	s.Replace(custom)
	if got := s.List(domain.CategoryMood); len(got) != 1 || got[0] != "only mood" {
		t.Errorf("Replace が反映されていません: %v", got)
	}
	if got := s.List(domain.CategoryPlace); got != nil {
		t.Errorf("Replace 後も旧データが残っています: %v", got)
	}

	s.Reset()
	if got := s.List(domain.CategoryPlace); len(got) == 0 {
		t.Error("Reset 後にデフォルトデータへ戻っていません")
	}
}
