package cmd

import (
	"fmt"

	"github.com/shouni/go-prompt-studio/internal/config"
	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/engine"
	"github.com/shouni/go-prompt-studio/pkg/store"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有される実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 生成内容関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Subject, "subject", "s", "", "プロンプトの主題なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Gender, "gender", "g", "", "性別条件（female / male / neutral）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Custom, "custom", "", "先頭に置く自由入力テキストなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", "", "ランダム化モード（random / no_figure_random）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.TemplateID, "template", "t", "", "使用するテンプレートIDなのだ。")
	rootCmd.PersistentFlags().StringSliceVarP(&opts.Quality, "quality", "q", nil, "品質プリセットID（複数指定可）なのだ。")
	rootCmd.PersistentFlags().Int64Var(&opts.Seed, "seed", 0, "決定論的生成のためのシード値なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.AspectRatio, "aspect-ratio", "", "アスペクト比（例: 16:9）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Negative, "negative", "", "明示的なネガティブプロンプトなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.CharacterID, "character-preset", "", "適用する保存済みキャラクタープリセットのIDなのだ。")

	// --- 出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", "", "結果の保存パス（未指定なら標準出力）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.StoreDir, "store-dir", "", "プリセット等を保存するディレクトリなのだ。")
}

// preRunAppE は、コマンド実行前の共通処理なのだ。
// --seed が明示されたかどうかをここで確定させるのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	opts.SeedSet = cmd.Flags().Changed("seed")
	return nil
}

// newEngine は設定とフラグからエンジンを構築する共通ヘルパーなのだ。
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	dir := cfg.StoreDir
	if opts.StoreDir != "" {
		dir = opts.StoreDir
	}
	kv, err := store.NewFile(dir)
	if err != nil {
		return nil, fmt.Errorf("永続化ストアの初期化に失敗したのだ: %w", err)
	}
	return engine.New(engine.Config{
		Store:                 kv,
		ComponentDataURL:      cfg.ComponentDataURL,
		RefreshTimeout:        cfg.HTTPTimeout,
		RefreshInterval:       cfg.RefreshInterval,
		Separator:             cfg.Separator,
		DisableNegativePrompt: cfg.DisableNegative,
	}), nil
}

// buildOptions はCLIフラグを GenerationOptions へ写像するのだ。
func buildOptions() domain.GenerationOptions {
	o := domain.GenerationOptions{
		Subject:          opts.Subject,
		Gender:           opts.Gender,
		Custom:           opts.Custom,
		GlobalOption:     domain.GlobalOption(opts.Mode),
		TemplateID:       opts.TemplateID,
		QualityPresetIDs: opts.Quality,
		AspectRatio:      opts.AspectRatio,
		NegativePrompt:   opts.Negative,
	}
	if opts.SeedSet {
		seed := opts.Seed
		o.Seed = &seed
	}
	return o
}

// runGenerate は生成の共通ディスパッチなのだ。--character-preset が
// 指定されていればキャラクタープリセットを適用して生成するのだよ。
func runGenerate(eng *engine.Engine) (*domain.GeneratedPrompt, []string) {
	if opts.CharacterID != "" {
		return eng.GenerateWithCharacter(opts.CharacterID, buildOptions())
	}
	return eng.Generate(buildOptions())
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"prompt-studio",
		addAppFlags,
		preRunAppE,
		generateCmd,
		randomCmd,
		batchCmd,
		imageRequestCmd,
		presetCmd,
		characterCmd,
		templateCmd,
		statsCmd,
		exportCmd,
		importCmd,
	)
}
