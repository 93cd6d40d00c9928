package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-prompt-studio/internal/config"
	"github.com/shouni/go-prompt-studio/pkg/domain"

	"github.com/spf13/cobra"
)

var presetName string

// presetCmd は、生成オプションのプリセットを管理するのだ。
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "保存済みプリセットを管理するのだ。",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "プリセットの一覧を表示するのだ。",
	RunE:  presetListCommand,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "現在のフラグ内容をプリセットとして保存するのだ。",
	RunE:  presetSaveCommand,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "プリセットを削除するのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  presetDeleteCommand,
}

var presetUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "プリセットからプロンプトを生成するのだ。フラグの明示値が優先されるのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  presetUseCommand,
}

func init() {
	presetSaveCmd.Flags().StringVar(&presetName, "name", "", "プリセットの表示名なのだ。")
	presetCmd.AddCommand(presetListCmd, presetSaveCmd, presetDeleteCmd, presetUseCmd)
}

func presetListCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	presets := eng.ListPresets()
	if len(presets) == 0 {
		fmt.Println("保存済みプリセットはまだないのだ。")
		return nil
	}

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		fav := ""
		if p.Favorite {
			fav = "*"
		}
		rows = append(rows, []string{p.ID, p.Name, fav, p.CreatedAt.Format("2006-01-02 15:04")})
	}
	fmt.Println(renderTable([]string{"ID", "NAME", "FAV", "CREATED"}, rows))
	return nil
}

func presetSaveCommand(cmd *cobra.Command, args []string) error {
	if presetName == "" {
		return fmt.Errorf("--name でプリセット名を指定してほしいのだ")
	}
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	saved := eng.SavePreset(domain.SavedPreset{
		Name:    presetName,
		Options: buildOptions(),
	})
	slog.Info("プリセットを保存したのだ！", "id", saved.ID, "name", saved.Name)
	return nil
}

func presetDeleteCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if !eng.DeletePreset(args[0]) {
		fmt.Printf("プリセット '%s' は見つからなかったのだ。\n", args[0])
		return nil
	}
	slog.Info("プリセットを削除したのだ", "id", args[0])
	return nil
}

func presetUseCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	prompt, warnings := eng.GenerateFromPreset(args[0], buildOptions())
	printWarnings(warnings)
	printPrompt(prompt)
	return nil
}
