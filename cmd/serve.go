package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finuxhq/docqa/internal/bots"
	"github.com/finuxhq/docqa/internal/db"
	"github.com/finuxhq/docqa/internal/qlog"
	"github.com/finuxhq/docqa/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP question-answering server",
	Long: `Starts the HTTP server with the chat endpoint, websocket chat, the
question log API, and the Telegram webhook (when a bot token is
configured). The persisted index is loaded at startup; a missing or
empty index degrades to fallback-only answers instead of failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "docqa.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store := qlog.NewStore(database)

		index, err := loadIndex(cfg)
		if err != nil {
			return err
		}

		comp, err := buildComposer(cfg, index, store)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		}, comp)

		qlog.RegisterRoutes(srv.Router(), store)

		if cfg.Telegram.Token != "" {
			gateway := bots.NewGateway(bots.NewProcessor(comp))
			bots.RegisterRoutes(srv.Router(), bots.NewTelegramHandler(gateway, cfg.Telegram.Token))
		} else {
			fmt.Fprintln(os.Stderr, "Telegram token not configured; webhook disabled")
		}

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
