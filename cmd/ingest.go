package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finuxhq/docqa/internal/chunker"
	"github.com/finuxhq/docqa/internal/ingest"
	"github.com/finuxhq/docqa/internal/progress"
	"github.com/finuxhq/docqa/internal/vectordb"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index the document corpus into the embedding store",
	Long: `Discovers documents under docs_dir, extracts and chunks their text,
embeds each passage, and persists the index under data_dir. Run this
after adding or changing documents; serving reads the persisted index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		files, err := ingest.Discover(cfg.DocsDir, cfg.Include, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("discovering documents: %w", err)
		}
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: no documents found under %s; the index will be empty and all answers will come from the fallback.\n", cfg.DocsDir)
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}

		ctx := context.Background()
		splitter := chunker.New(cfg.Chunk.Size, cfg.Chunk.Overlap)
		pipe := ingest.NewPipeline(cfg.DocsDir, splitter, store, progress.NewReporter())

		// An unreachable embedding backend must fail the run, not produce
		// a partial index.
		stats, err := pipe.Run(ctx, files)
		if err != nil {
			return fmt.Errorf("indexing corpus: %w", err)
		}

		indexDir := filepath.Join(cfg.DataDir, "vectordb")
		if err := store.Persist(ctx, indexDir); err != nil {
			return fmt.Errorf("persisting index: %w", err)
		}

		fmt.Printf("Indexed %d files (%d blocks, %d passages) into %s\n",
			stats.Files, stats.Blocks, stats.Passages, indexDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
