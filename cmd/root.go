// Package cmd implements the docqa command-line interface.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Document-grounded question answering over your own corpus",
	Long: `docqa indexes a directory of documents (PDF, DOCX, plain text,
markdown) into an embedding index and answers questions from it,
falling back to a general LLM answer when the corpus has nothing
relevant. It serves answers over HTTP, websocket, Telegram, and MCP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys usually live in a local .env during development.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docqa.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
