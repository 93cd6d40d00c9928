package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/shouni/go-prompt-studio/internal/config"
	"github.com/shouni/go-prompt-studio/pkg/domain"
	"github.com/shouni/go-prompt-studio/pkg/report"

	"github.com/spf13/cobra"
)

// generateCmd は、フラグで指定したオプションからプロンプトを生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "オプションからプロンプトを生成するのだ。",
	Long: `主題・性別・モードなどのフラグからプロンプトを合成し、
各プラットフォーム方言（stable / midjourney / dalle など）と
テンプレート出力をまとめて表示するのだ。`,
	RunE: generateCommand,
}

// randomCmd は、全カテゴリをランダム化して生成するのだ。
var randomCmd = &cobra.Command{
	Use:   "random [gender]",
	Short: "全カテゴリをランダム化してプロンプトを生成するのだ。",
	Args:  cobra.MaximumNArgs(1),
	RunE:  randomCommand,
}

// batchCmd は、指定カテゴリだけを再抽選しながら複数件を生成するのだ。
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "指定カテゴリを変化させながら複数のプロンプトを一括生成するのだ。",
	Long: `--count 件のプロンプトを生成するのだ。--vary で指定したカテゴリは
アイテムごとに再抽選され、それ以外はベースの指定が維持されるのだよ。`,
	RunE: batchCommand,
}

func init() {
	batchCmd.Flags().IntVarP(&opts.Count, "count", "n", 3, "生成する件数なのだ。")
	batchCmd.Flags().StringSliceVar(&opts.Vary, "vary", nil, "アイテムごとに再抽選するカテゴリ名なのだ。")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	prompt, warnings := runGenerate(eng)
	printWarnings(warnings)
	printPrompt(prompt)
	return nil
}

func randomCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	gender := opts.Gender
	if len(args) > 0 {
		gender = args[0]
	}

	prompt, warnings := eng.GenerateRandom(gender)
	printWarnings(warnings)
	printPrompt(prompt)
	return nil
}

func batchCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	slog.Info("バッチ生成を開始するのだ！", "count", opts.Count, "vary", opts.Vary)
	prompts := eng.BatchGenerate(buildOptions(), opts.Count, opts.Vary)

	if opts.OutputFile == "" {
		for _, p := range prompts {
			printPrompt(p)
			fmt.Println()
		}
		return nil
	}

	doc := report.Markdown("Generated Prompts", prompts)
	if err := os.WriteFile(opts.OutputFile, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("バッチ結果の書き込みに失敗したのだ: %w", err)
	}
	slog.Info("バッチ生成が完了したのだ！", "output_file", opts.OutputFile, "count", len(prompts))
	return nil
}

// printPrompt は生成結果を標準出力へ整形して表示するのだ。
func printPrompt(p *domain.GeneratedPrompt) {
	fmt.Printf("prompt: %s\n", p.Original)
	if p.NegativePrompt != "" {
		fmt.Printf("negative: %s\n", p.NegativePrompt)
	}

	names := make([]string, 0, len(p.Formats))
	for name := range p.Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, p.Formats[name])
	}
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		slog.Warn(w)
	}
}
