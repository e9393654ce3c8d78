package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [category]",
	Short: "Start a quiz, optionally straight into a category",
	Long: "Start a quiz. With a category key (see `snakequiz categories`) the menu is " +
		"skipped and the first question is shown immediately.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := ""
		if len(args) == 1 {
			start = args[0]
		}
		return runApp(cmd, start)
	},
}
