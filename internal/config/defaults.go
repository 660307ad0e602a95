package config

// EmbeddingPreset describes the default embedding model for a provider.
type EmbeddingPreset struct {
	Model      string
	Dimensions int
}

// embeddingPresets maps each embedding provider to its default model.
var embeddingPresets = map[ProviderType]EmbeddingPreset{
	ProviderOpenAI: {Model: "text-embedding-3-small", Dimensions: 1536},
	ProviderGoogle: {Model: "gemini-embedding-001", Dimensions: 3072},
	ProviderOllama: {Model: "nomic-embed-text", Dimensions: 768},
}

// defaultModels maps each LLM provider to its default generation model.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGoogle: "gemini-2.5-flash",
	ProviderOllama: "llama3",
}

// DefaultIncludes are the corpus file patterns indexed by default.
var DefaultIncludes = []string{
	"**/*.pdf",
	"**/*.docx",
	"**/*.txt",
	"**/*.md",
}

// DefaultExcludes are patterns skipped during corpus discovery.
var DefaultExcludes = []string{
	"**/.git/**",
	"**/~$*",
	"**/.DS_Store",
}

// DefaultConfig returns a Config with sensible defaults. The chunking and
// retrieval values are starting points, not universal truths; min_similarity
// in particular should be validated against a labeled query set.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderGoogle,
		Model:             defaultModels[ProviderGoogle],
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    embeddingPresets[ProviderOpenAI].Model,
		DocsDir:           "data/raw",
		DataDir:           ".docqa",
		Include:           DefaultIncludes,
		Exclude:           DefaultExcludes,
		Chunk: ChunkConfig{
			Size:    800,
			Overlap: 150,
		},
		Retrieval: RetrievalConfig{
			TopK:            3,
			MinSimilarity:   0.25,
			MaxContextChars: 1400,
		},
		Answer: AnswerConfig{
			Mode:           AnswerDirect,
			TimeoutSeconds: 20,
		},
		Server: ServerConfig{
			Port:     8080,
			AllowAll: true,
		},
	}
}

// GetEmbeddingPreset returns the default embedding model for the provider.
// Falls back to the OpenAI preset for unknown providers.
func GetEmbeddingPreset(provider ProviderType) EmbeddingPreset {
	if preset, ok := embeddingPresets[provider]; ok {
		return preset
	}
	return embeddingPresets[ProviderOpenAI]
}

// DefaultModel returns the default generation model for the provider.
func DefaultModel(provider ProviderType) string {
	if model, ok := defaultModels[provider]; ok {
		return model
	}
	return defaultModels[ProviderGoogle]
}
