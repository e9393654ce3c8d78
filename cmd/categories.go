package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List quiz categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		printCategories(cmd.OutOrStdout(), cat)
		return nil
	},
}

func printCategories(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%-16s  %-24s  %9s  %s\n", "Key", "Title", "Questions", "Mix")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, c := range cat.Categories() {
		title := c.Title
		if len(title) > 24 {
			title = title[:21] + "..."
		}
		fmt.Fprintf(w, "%-16s  %-24s  %9d  %s\n", c.Key, title, len(c.Questions), difficultyMix(c))
	}

	fmt.Fprintf(w, "\n%d categories, %d questions\n", cat.Len(), cat.QuestionCount())
}

// difficultyMix renders counts like "2 easy, 1 medium, 2 hard", skipping
// difficulties with no questions.
func difficultyMix(c catalog.Category) string {
	mix := c.DifficultyMix()
	parts := make([]string, 0, len(mix))
	for _, d := range catalog.AllDifficulties() {
		if n := mix[d]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, d))
		}
	}
	return strings.Join(parts, ", ")
}
