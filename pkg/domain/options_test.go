package domain

import (
	"testing"
)

func TestResolveGender(t *testing.T) {
	cases := map[string]string{
		"female":  GenderFemale,
		"male":    GenderMale,
		"neutral": GenderNeutral,
		"":        GenderNeutral,
		"unknown": GenderNeutral,
	}
	for input, expected := range cases {
		if got := ResolveGender(input); got != expected {
			t.Errorf("ResolveGender(%q): 期待値 '%s', 実際の値 '%s'", input, expected, got)
		}
	}
}

func TestGenerationOptions_Clone(t *testing.T) {
	seed := int64(42)
	original := GenerationOptions{
		Subject:          "portrait",
		QualityPresetIDs: []string{"standard"},
		Seed:             &seed,
	}

	copied := original.Clone()
	copied.QualityPresetIDs[0] = "changed"
	*copied.Seed = 99

	t.Run("スライスが複製されていること", func(t *testing.T) {
		if original.QualityPresetIDs[0] != "standard" {
			t.Errorf("コピー側の変更が元に波及しました: %s", original.QualityPresetIDs[0])
		}
	})

	t.Run("シードポインタが複製されていること", func(t *testing.T) {
		if *original.Seed != 42 {
			t.Errorf("期待値 42, 実際の値 %d", *original.Seed)
		}
	})
}

func TestGenerationOptions_Merge(t *testing.T) {
	base := GenerationOptions{
		Subject:   "portrait",
		Place:     "ancient library",
		Style:     "watercolor",
		HairColor: "silver",
	}
	override := GenerationOptions{
		Place:  "mountain summit",
		Gender: GenderMale,
	}

	merged := base.Merge(override)

	t.Run("上書き値が優先されること", func(t *testing.T) {
		if merged.Place != "mountain summit" {
			t.Errorf("期待値 'mountain summit', 実際の値 '%s'", merged.Place)
		}
		if merged.Gender != GenderMale {
			t.Errorf("期待値 'male', 実際の値 '%s'", merged.Gender)
		}
	})

	t.Run("未指定のフィールドはベースが維持されること", func(t *testing.T) {
		if merged.Subject != "portrait" {
			t.Errorf("期待値 'portrait', 実際の値 '%s'", merged.Subject)
		}
		if merged.Style != "watercolor" {
			t.Errorf("期待値 'watercolor', 実際の値 '%s'", merged.Style)
		}
		if merged.HairColor != "silver" {
			t.Errorf("期待値 'silver', 実際の値 '%s'", merged.HairColor)
		}
	})
}

func TestGenerationOptions_CategoryAccess(t *testing.T) {
	var opts GenerationOptions

	t.Run("名前でカテゴリ値を設定・取得できること", func(t *testing.T) {
		opts.SetCategory(CategoryHairstyle, "twin tails")
		if got := opts.Category(CategoryHairstyle); got != "twin tails" {
			t.Errorf("期待値 'twin tails', 実際の値 '%s'", got)
		}
		if opts.Hairstyle != "twin tails" {
			t.Error("SetCategory がフィールドに反映されていません")
		}
	})

	t.Run("未知のカテゴリは空文字を返すこと", func(t *testing.T) {
		if got := opts.Category("nonexistent"); got != "" {
			t.Errorf("期待値 '', 実際の値 '%s'", got)
		}
	})

	t.Run("ClearCategories で値が空に戻ること", func(t *testing.T) {
		opts.SetCategory(CategoryPlace, "seaside promenade")
		opts.ClearCategories([]string{CategoryPlace, CategoryHairstyle})
		if opts.Place != "" || opts.Hairstyle != "" {
			t.Error("ClearCategories が値を消去していません")
		}
	})

	t.Run("CategoryValues は設定済みの値だけを返すこと", func(t *testing.T) {
		o := GenerationOptions{Subject: "landscape", Mood: "peaceful"}
		values := o.CategoryValues()
		if len(values) != 2 {
			t.Fatalf("期待値 2件, 実際の値 %d件", len(values))
		}
		if values[CategorySubject] != "landscape" || values[CategoryMood] != "peaceful" {
			t.Errorf("期待した値が含まれていません: %v", values)
		}
	})
}

func TestCategoryNames(t *testing.T) {
	t.Run("全カテゴリ数が一致すること", func(t *testing.T) {
		// subject + キャラクター9 + シーン6 + スタイル2 + 詳細20
		expected := 1 + len(CharacterCategoryNames()) + len(SceneCategoryNames()) +
			len(StyleCategoryNames()) + len(DetailCategoryNames())
		if len(CategoryNames()) != expected {
			t.Errorf("期待値 %d, 実際の値 %d", expected, len(CategoryNames()))
		}
	})

	t.Run("詳細カテゴリは宣言順であること", func(t *testing.T) {
		details := DetailCategoryNames()
		if details[0] != CategoryColorPalette {
			t.Errorf("先頭の期待値 '%s', 実際の値 '%s'", CategoryColorPalette, details[0])
		}
		if details[len(details)-1] != CategoryOrnament {
			t.Errorf("末尾の期待値 '%s', 実際の値 '%s'", CategoryOrnament, details[len(details)-1])
		}
	})
}

func TestSeedFromName(t *testing.T) {
	t.Run("同じ名前から常に同じシードが生成されること", func(t *testing.T) {
		seed1 := SeedFromName("Alice")
		seed2 := SeedFromName("Alice")
		if seed1 != seed2 {
			t.Error("同じ名前から異なるシードが生成されました。決定論的ではありません")
		}
	})

	t.Run("シードは常に非負であること", func(t *testing.T) {
		for _, name := range []string{"Alice", "Bob", "テスト", ""} {
			if seed := SeedFromName(name); seed < 0 {
				t.Errorf("名前 '%s' から負のシード %d が生成されました", name, seed)
			}
		}
	})

	t.Run("異なる名前は異なるシードになること", func(t *testing.T) {
		if SeedFromName("Alice") == SeedFromName("Bob") {
			t.Error("異なる名前から同じシードが生成されました")
		}
	})
}

func TestGeneratedPrompt_Format(t *testing.T) {
	p := &GeneratedPrompt{
		Original: "base prompt",
		Formats:  map[string]string{FormatStable: "stable output"},
	}

	if got := p.Format(FormatStable); got != "stable output" {
		t.Errorf("期待値 'stable output', 実際の値 '%s'", got)
	}
	if got := p.Format("unknown"); got != "base prompt" {
		t.Errorf("未登録の名前は Original を返すべきです: '%s'", got)
	}
}

func TestCharacterPreset_ApplyTo(t *testing.T) {
	preset := CharacterPreset{
		Attributes: map[string]string{
			CategoryHairstyle: "long flowing hair",
			CategoryEyeColor:  "amber",
		},
	}

	opts := GenerationOptions{EyeColor: "ice blue"}
	preset.ApplyTo(&opts)

	if opts.Hairstyle != "long flowing hair" {
		t.Errorf("未指定の属性が適用されていません: '%s'", opts.Hairstyle)
	}
	if opts.EyeColor != "ice blue" {
		t.Errorf("明示済みの値が上書きされました: '%s'", opts.EyeColor)
	}
}
