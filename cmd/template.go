package cmd

import (
	"fmt"
	"strconv"

	"github.com/shouni/go-prompt-studio/internal/config"

	"github.com/spf13/cobra"
)

// templateCmd は、ルールテンプレートを管理するのだ。
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "ルールテンプレートを管理するのだ。",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "保存済みテンプレートと組み込みテンプレートの一覧を表示するのだ。",
	RunE:  templateListCommand,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "テンプレートの内容を表示するのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  templateShowCommand,
}

func init() {
	templateCmd.AddCommand(templateListCmd, templateShowCmd)
}

func templateListCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	templates := eng.ListTemplates()
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{t.ID, t.Notes, strconv.Itoa(len(t.Rules))})
	}
	fmt.Println(renderTable([]string{"ID", "NOTES", "RULES"}, rows))
	return nil
}

func templateShowCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	tmpl, ok := eng.LoadTemplate(args[0])
	if !ok {
		return fmt.Errorf("テンプレート '%s' は見つからなかったのだ", args[0])
	}

	fmt.Printf("id: %s\n", tmpl.ID)
	if tmpl.Notes != "" {
		fmt.Printf("notes: %s\n", tmpl.Notes)
	}
	if pattern := tmpl.Pattern(); pattern != "" {
		fmt.Printf("pattern: %s\n", pattern)
	}
	for _, rule := range tmpl.Rules {
		fmt.Printf("rule: %s\n", rule)
	}
	return nil
}
