package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shouni/go-prompt-studio/internal/config"

	"github.com/spf13/cobra"
)

// statsCmd は、生成統計を表示するのだ。
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "生成統計を表示するのだ。",
	RunE:  statsCommand,
}

func statsCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	stats := eng.Stats()
	fmt.Printf("total generations: %d\n", stats.TotalGenerations)
	fmt.Printf("average prompt length: %.1f\n", stats.AveragePromptLength)
	if !stats.LastGeneratedAt.IsZero() {
		fmt.Printf("last generated: %s\n", stats.LastGeneratedAt.Format("2006-01-02 15:04:05"))
	}

	if len(stats.TemplateUsage) > 0 {
		fmt.Println("\ntemplate usage:")
		fmt.Println(renderTable([]string{"TEMPLATE", "COUNT"}, usageRows(stats.TemplateUsage)))
	}
	if len(stats.CategoryUsage) > 0 {
		fmt.Println("\ncategory usage:")
		fmt.Println(renderTable([]string{"CATEGORY", "COUNT"}, usageRows(stats.CategoryUsage)))
	}
	return nil
}

// usageRows はカウントマップを降順・名前順のテーブル行へ変換するのだ。
func usageRows(usage map[string]int) [][]string {
	names := make([]string, 0, len(usage))
	for name := range usage {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if usage[names[i]] != usage[names[j]] {
			return usage[names[i]] > usage[names[j]]
		}
		return names[i] < names[j]
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(usage[name])})
	}
	return rows
}
