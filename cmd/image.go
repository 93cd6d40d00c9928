package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-prompt-studio/internal/config"
	"github.com/shouni/go-prompt-studio/pkg/engine"

	"github.com/spf13/cobra"
)

// imageRequestCmd は、生成したプロンプトを画像生成要求のJSONへ変換するサブコマンドなのだ。
// 画像生成サービスの呼び出しは行わず、下流ツールに渡せる要求文書を作るだけなのだ。
var imageRequestCmd = &cobra.Command{
	Use:   "image-request",
	Short: "プロンプトを画像生成要求のJSONとして出力するのだ。",
	Long: `フラグで指定したオプションからプロンプトを合成し、
ネガティブプロンプト・アスペクト比・シードを含む画像生成要求の
JSON文書として出力するのだ。画像生成そのものは下流に委ねるのだよ。`,
	RunE: imageRequestCommand,
}

func imageRequestCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	prompt, warnings := runGenerate(eng)
	printWarnings(warnings)

	req := engine.ToImageRequest(prompt, buildOptions())
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("画像生成要求のエンコードに失敗したのだ: %w", err)
	}

	if opts.OutputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.OutputFile, data, 0o644); err != nil {
		return fmt.Errorf("画像生成要求の書き込みに失敗したのだ: %w", err)
	}
	slog.Info("画像生成要求を書き出したのだ！", "output_file", opts.OutputFile)
	return nil
}
