package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/finuxhq/docqa/internal/composer"
	"github.com/finuxhq/docqa/internal/config"
	"github.com/finuxhq/docqa/internal/embeddings"
	"github.com/finuxhq/docqa/internal/llm"
	"github.com/finuxhq/docqa/internal/qlog"
	"github.com/finuxhq/docqa/internal/retriever"
	"github.com/finuxhq/docqa/internal/vectordb"
)

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// This is the shared version used by the ingest, ask, serve, and mcp commands.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}
	preset := config.GetEmbeddingPreset(provider)
	model := cfg.EmbeddingModel
	if model == "" {
		model = preset.Model
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	case config.ProviderGoogle:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderGoogle))
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required for Google embeddings")
		}
		return embeddings.NewGoogleEmbedder(apiKey, embeddings.GoogleModel(model)), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, preset.Dimensions, ""), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// createLLMProviderFromConfig creates an LLM provider based on config settings.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	model := cfg.Model
	if model == "" {
		model = config.DefaultModel(cfg.Provider)
	}
	return llm.NewProvider(string(cfg.Provider), model)
}

// loadIndex opens the persisted embedding index. A missing or empty index is
// a warning, not an error; the service then answers from the fallback only.
func loadIndex(cfg *config.Config) (vectordb.VectorStore, error) {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	indexDir := filepath.Join(cfg.DataDir, "vectordb")
	if err := store.Load(context.Background(), indexDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load index from %s: %v\n", indexDir, err)
		fmt.Fprintf(os.Stderr, "Answers will come from the fallback only. Run `docqa ingest` first.\n")
	} else if store.Count() == 0 {
		fmt.Fprintf(os.Stderr, "Warning: index at %s is empty; answers will come from the fallback only.\n", indexDir)
	}
	return store, nil
}

// buildComposer wires the retriever, generation provider, and optional
// question log into an answer composer.
func buildComposer(cfg *config.Config, store vectordb.VectorStore, recorder qlog.Recorder) (*composer.Composer, error) {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	ret := retriever.New(store, cfg.Retrieval.TopK, cfg.Retrieval.MinSimilarity, cfg.Retrieval.MaxContextChars)

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel(cfg.Provider)
	}

	var opts []composer.Option
	if recorder != nil {
		opts = append(opts, composer.WithRecorder(recorder))
	}
	return composer.New(ret, provider, model, cfg.Answer.Mode,
		time.Duration(cfg.Answer.TimeoutSeconds)*time.Second, opts...), nil
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docqa init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
