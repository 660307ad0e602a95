package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finuxhq/docqa/internal/composer"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a one-off question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := loadIndex(cfg)
		if err != nil {
			return err
		}

		comp, err := buildComposer(cfg, store, nil)
		if err != nil {
			return err
		}

		answer := comp.Answer(context.Background(), composer.Question{
			Platform: "cli",
			Text:     strings.Join(args, " "),
		})
		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
