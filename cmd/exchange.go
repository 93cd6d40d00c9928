package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-prompt-studio/internal/config"

	"github.com/spf13/cobra"
)

// exportCmd は、プリセット・テンプレート・統計を1つのJSON文書へ書き出すのだ。
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "全コレクションをJSON文書としてエクスポートするのだ。",
	RunE:  exportCommand,
}

// importCmd は、エクスポート文書を読み込んでコレクションを置き換えるのだ。
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "エクスポート文書をインポートするのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  importCommand,
}

func exportCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	data, err := eng.Export()
	if err != nil {
		return err
	}

	if opts.OutputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.OutputFile, data, 0o644); err != nil {
		return fmt.Errorf("エクスポート文書の書き込みに失敗したのだ: %w", err)
	}
	slog.Info("エクスポートが完了したのだ！", "output_file", opts.OutputFile)
	return nil
}

func importCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("インポート文書の読み込みに失敗したのだ: %w", err)
	}
	if err := eng.Import(data); err != nil {
		return err
	}
	slog.Info("インポートが完了したのだ！", "file", args[0])
	return nil
}
