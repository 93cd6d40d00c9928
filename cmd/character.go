package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shouni/go-prompt-studio/internal/config"
	"github.com/shouni/go-prompt-studio/pkg/domain"

	"github.com/spf13/cobra"
)

var (
	characterName       string
	characterAttributes []string
)

// characterCmd は、キャラクタープリセットを管理するのだ。
var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "キャラクタープリセットを管理するのだ。",
}

var characterListCmd = &cobra.Command{
	Use:   "list",
	Short: "キャラクタープリセットの一覧を表示するのだ。",
	RunE:  characterListCommand,
}

var characterSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "カテゴリ属性の組をキャラクターとして保存するのだ。",
	Long: `--attr カテゴリ=値 の形式で属性を指定するのだ。
例: prompt-studio character save --name 主人公 --attr hairstyle="long silver hair" --attr eye_color="amber eyes"`,
	RunE: characterSaveCommand,
}

var characterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "キャラクタープリセットを削除するのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  characterDeleteCommand,
}

func init() {
	characterSaveCmd.Flags().StringVar(&characterName, "name", "", "キャラクターの表示名なのだ。")
	characterSaveCmd.Flags().StringArrayVar(&characterAttributes, "attr", nil, "カテゴリ=値 形式の属性なのだ（複数指定可）。")
	characterCmd.AddCommand(characterListCmd, characterSaveCmd, characterDeleteCmd)
}

func characterListCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	characters := eng.ListCharacterPresets()
	if len(characters) == 0 {
		fmt.Println("保存済みキャラクターはまだないのだ。")
		return nil
	}

	rows := make([][]string, 0, len(characters))
	for _, c := range characters {
		rows = append(rows, []string{c.ID, c.Name, summarizeAttributes(c.Attributes)})
	}
	fmt.Println(renderTable([]string{"ID", "NAME", "ATTRIBUTES"}, rows))
	return nil
}

func characterSaveCommand(cmd *cobra.Command, args []string) error {
	if characterName == "" {
		return fmt.Errorf("--name でキャラクター名を指定してほしいのだ")
	}

	attrs := make(map[string]string, len(characterAttributes))
	for _, pair := range characterAttributes {
		category, value, ok := strings.Cut(pair, "=")
		if !ok || category == "" {
			return fmt.Errorf("属性 '%s' は カテゴリ=値 の形式で指定してほしいのだ", pair)
		}
		attrs[category] = value
	}

	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	saved := eng.SaveCharacterPreset(domain.CharacterPreset{
		Name:       characterName,
		Attributes: attrs,
	})
	slog.Info("キャラクターを保存したのだ！", "id", saved.ID, "name", saved.Name)
	return nil
}

func characterDeleteCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if !eng.DeleteCharacterPreset(args[0]) {
		fmt.Printf("キャラクター '%s' は見つからなかったのだ。\n", args[0])
		return nil
	}
	slog.Info("キャラクターを削除したのだ", "id", args[0])
	return nil
}

// summarizeAttributes は一覧表示用に属性を "category=value" 形式で連結するのだ。
func summarizeAttributes(attrs map[string]string) string {
	parts := make([]string, 0, len(attrs))
	for category, value := range attrs {
		parts = append(parts, category+"="+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
