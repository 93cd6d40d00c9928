package composer

import (
	"strings"
	"testing"

	"github.com/shouni/go-prompt-studio/pkg/components"
	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/randsrc"
)

func newTestComposer(seed int64) *Composer {
	return New(components.NewStore(), randsrc.NewSeeded(seed), "")
}

func TestCompose_Determinism(t *testing.T) {
	opts := domain.GenerationOptions{
		Gender:       domain.GenderFemale,
		GlobalOption: domain.GlobalRandom,
	}

	a := newTestComposer(42).Compose(opts, domain.GenderFemale)
	b := newTestComposer(42).Compose(opts, domain.GenderFemale)
	if a != b {
		t.Errorf("同じシードから異なるプロンプトが生成されました:\n%s\n%s", a, b)
	}

	c := newTestComposer(43).Compose(opts, domain.GenderFemale)
	if a == c {
		t.Error("異なるシードから同一のプロンプトが生成されました")
	}
}

func TestBuildPromptComponents_Order(t *testing.T) {
	opts := domain.GenerationOptions{
		Custom:           "my custom text",
		Subject:          "portrait",
		Hairstyle:        "twin tails",
		Place:            "ancient library",
		Style:            "watercolor",
		ColorPalette:     "pastel gradient",
		QualityPresetIDs: []string{"standard"},
	}

	parts := newTestComposer(1).BuildPromptComponents(opts, domain.GenderNeutral)

	// custom → subject → キャラクター → シーン → スタイル → 詳細 → 品質タグ
	expected := []string{
		"my custom text", "portrait", "twin tails", "ancient library",
		"watercolor", "pastel gradient", "high quality", "detailed",
	}
	if len(parts) != len(expected) {
		t.Fatalf("期待値 %d要素, 実際の値 %d要素: %v", len(expected), len(parts), parts)
	}
	for i, want := range expected {
		if parts[i] != want {
			t.Errorf("位置 %d: 期待値 '%s', 実際の値 '%s'", i, want, parts[i])
		}
	}
}

func TestBuildPromptComponents_RandomMode(t *testing.T) {
	opts := domain.GenerationOptions{GlobalOption: domain.GlobalRandom}
	parts := newTestComposer(7).BuildPromptComponents(opts, domain.GenderFemale)

	t.Run("未指定のカテゴリが補完されること", func(t *testing.T) {
		// subject + キャラクター9（makeup含む）+ シーン6 + スタイル2 + 詳細20
		expected := 1 + 9 + 6 + 2 + 20
		if len(parts) != expected {
			t.Errorf("期待値 %d要素, 実際の値 %d要素", expected, len(parts))
		}
	})

	t.Run("明示的な値がランダム化より優先されること", func(t *testing.T) {
		fixed := domain.GenerationOptions{
			GlobalOption: domain.GlobalRandom,
			Place:        "my explicit place",
		}
		got := newTestComposer(7).BuildPromptComponents(fixed, domain.GenderFemale)
		found := false
		for _, p := range got {
			if p == "my explicit place" {
				found = true
				break
			}
		}
		if !found {
			t.Error("明示的に指定した place が出力に含まれていません")
		}
	})
}

func TestBuildPromptComponents_MakeupGenderGate(t *testing.T) {
	data := components.NewStore()
	makeupSet := make(map[string]struct{})
	for _, v := range data.List(domain.CategoryMakeup) {
		makeupSet[v] = struct{}{}
	}

	containsMakeup := func(parts []string) bool {
		for _, p := range parts {
			if _, found := makeupSet[p]; found {
				return true
			}
		}
		return false
	}

	t.Run("male では化粧カテゴリが除外されること", func(t *testing.T) {
		opts := domain.GenerationOptions{GlobalOption: domain.GlobalRandom, Makeup: "bold eyeliner"}
		parts := newTestComposer(11).BuildPromptComponents(opts, domain.GenderMale)
		for _, p := range parts {
			if p == "bold eyeliner" {
				t.Error("male なのに明示的な化粧値が出力されました")
			}
		}
		if containsMakeup(parts) {
			t.Error("male なのにランダムな化粧値が出力されました")
		}
	})

	t.Run("female では化粧カテゴリが含まれうること", func(t *testing.T) {
		opts := domain.GenerationOptions{GlobalOption: domain.GlobalRandom}
		parts := newTestComposer(11).BuildPromptComponents(opts, domain.GenderFemale)
		if !containsMakeup(parts) {
			t.Error("female の全ランダム生成で化粧値が選ばれていません")
		}
	})
}

func TestBuildPromptComponents_GenderedClothing(t *testing.T) {
	data := components.NewStore()
	femaleOnly := make(map[string]struct{})
	for _, v := range data.List(domain.GenderedKey(domain.CategoryClothing, domain.GenderFemale)) {
		femaleOnly[v] = struct{}{}
	}

	// male の全ランダム生成を複数シードで回し、female 専用衣装が出ないことを確認するのだ
	for seed := int64(0); seed < 20; seed++ {
		opts := domain.GenerationOptions{GlobalOption: domain.GlobalRandom}
		parts := newTestComposer(seed).BuildPromptComponents(opts, domain.GenderMale)
		for _, p := range parts {
			if _, found := femaleOnly[p]; found {
				t.Fatalf("シード %d: male の出力に female 専用衣装 '%s' が含まれています", seed, p)
			}
		}
	}
}

func TestBuildPromptComponents_NoFigureRandom(t *testing.T) {
	opts := domain.GenerationOptions{
		GlobalOption: domain.GlobalNoFigureRandom,
		Hairstyle:    "twin tails",
		Character:    "named hero",
	}
	parts := newTestComposer(5).BuildPromptComponents(opts, domain.GenderFemale)

	t.Run("キャラクターブロック全体が抑制されること", func(t *testing.T) {
		for _, p := range parts {
			if p == "twin tails" || p == "named hero" {
				t.Errorf("no_figure_random なのにキャラクター要素 '%s' が出力されました", p)
			}
		}
	})

	t.Run("subject はランダム化されないこと", func(t *testing.T) {
		subjectSet := make(map[string]struct{})
		for _, v := range components.NewStore().List(domain.CategorySubject) {
			subjectSet[v] = struct{}{}
		}
		for _, p := range parts {
			if _, found := subjectSet[p]; found {
				t.Errorf("no_figure_random なのに subject '%s' がランダム化されました", p)
			}
		}
	})

	t.Run("シーン系カテゴリはランダム化されること", func(t *testing.T) {
		// シーン6 + スタイル2 + 詳細20
		expected := 6 + 2 + 20
		if len(parts) != expected {
			t.Errorf("期待値 %d要素, 実際の値 %d要素: %v", expected, len(parts), parts)
		}
	})

	t.Run("明示的なポーズは人物抑制時も通過すること", func(t *testing.T) {
		posed := domain.GenerationOptions{
			GlobalOption: domain.GlobalNoFigureRandom,
			Pose:         "mid-stride dynamic pose",
			Hairstyle:    "twin tails",
		}
		got := newTestComposer(5).BuildPromptComponents(posed, domain.GenderFemale)
		foundPose := false
		for _, p := range got {
			if p == "mid-stride dynamic pose" {
				foundPose = true
			}
			if p == "twin tails" {
				t.Error("ポーズ以外のキャラクター属性が通過しました")
			}
		}
		if !foundPose {
			t.Error("明示的なポーズが出力に含まれていません")
		}
	})

	t.Run("ポーズ未指定ならランダム化もされないこと", func(t *testing.T) {
		poseSet := make(map[string]struct{})
		for _, v := range components.NewStore().List(domain.CategoryPose) {
			poseSet[v] = struct{}{}
		}
		got := newTestComposer(5).BuildPromptComponents(
			domain.GenerationOptions{GlobalOption: domain.GlobalNoFigureRandom}, domain.GenderFemale)
		for _, p := range got {
			if _, found := poseSet[p]; found {
				t.Errorf("no_figure_random なのにポーズ '%s' がランダム化されました", p)
			}
		}
	})
}

func TestBuildPromptComponents_AccessoryPair(t *testing.T) {
	accessorySet := make(map[string]struct{})
	for _, v := range components.NewStore().List(domain.CategoryAccessory) {
		accessorySet[v] = struct{}{}
	}

	t.Run("ランダム化では2点が重複なしで選ばれること", func(t *testing.T) {
		opts := domain.GenerationOptions{GlobalOption: domain.GlobalRandom}
		parts := newTestComposer(13).BuildPromptComponents(opts, domain.GenderFemale)

		found := false
		for _, p := range parts {
			left, right, ok := strings.Cut(p, " and ")
			if !ok {
				continue
			}
			if _, okL := accessorySet[left]; !okL {
				continue
			}
			if _, okR := accessorySet[right]; !okR {
				continue
			}
			if left == right {
				t.Errorf("同じアクセサリが重複して選ばれました: '%s'", p)
			}
			found = true
		}
		if !found {
			t.Errorf("アクセサリの2点選択が出力に含まれていません: %v", parts)
		}
	})

	t.Run("明示的なアクセサリがランダム化より優先されること", func(t *testing.T) {
		opts := domain.GenerationOptions{
			GlobalOption: domain.GlobalRandom,
			Accessory:    "my single accessory",
		}
		parts := newTestComposer(13).BuildPromptComponents(opts, domain.GenderFemale)
		found := false
		for _, p := range parts {
			if p == "my single accessory" {
				found = true
				break
			}
		}
		if !found {
			t.Error("明示的なアクセサリが出力に含まれていません")
		}
	})
}

func TestBuildPromptComponents_DisabledMode(t *testing.T) {
	opts := domain.GenerationOptions{Subject: "still life"}
	parts := newTestComposer(5).BuildPromptComponents(opts, domain.GenderNeutral)

	if len(parts) != 1 || parts[0] != "still life" {
		t.Errorf("disabled モードでは明示値のみが出力されるべきです: %v", parts)
	}
}

func TestCompose_Separator(t *testing.T) {
	opts := domain.GenerationOptions{Subject: "portrait", Mood: "peaceful"}

	t.Run("既定の区切りで結合されること", func(t *testing.T) {
		got := newTestComposer(1).Compose(opts, domain.GenderNeutral)
		if got != "portrait, peaceful" {
			t.Errorf("期待値 'portrait, peaceful', 実際の値 '%s'", got)
		}
	})

	t.Run("カスタム区切りが使用されること", func(t *testing.T) {
		c := New(components.NewStore(), randsrc.NewSeeded(1), " | ")
		got := c.Compose(opts, domain.GenderNeutral)
		if got != "portrait | peaceful" {
			t.Errorf("期待値 'portrait | peaceful', 実際の値 '%s'", got)
		}
	})
}

func TestBuildPromptComponents_UnknownQualityPreset(t *testing.T) {
	opts := domain.GenerationOptions{
		Subject:          "portrait",
		QualityPresetIDs: []string{"nonexistent", "standard"},
	}
	parts := newTestComposer(1).BuildPromptComponents(opts, domain.GenderNeutral)
	joined := strings.Join(parts, ", ")
	if joined != "portrait, high quality, detailed" {
		t.Errorf("未知のプリセットは無視されるべきです: '%s'", joined)
	}
}
