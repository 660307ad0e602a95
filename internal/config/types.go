package config

// ProviderType identifies an LLM or embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// AnswerMode controls how the composer turns retrieved context into an answer.
type AnswerMode string

const (
	// AnswerDirect returns the cleaned retrieved context as the answer.
	AnswerDirect AnswerMode = "direct"
	// AnswerSynthesize asks the LLM to phrase an answer from the context.
	AnswerSynthesize AnswerMode = "synthesize"
)

// Config is the top-level docqa configuration, corresponding to .docqa.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`

	DocsDir string   `yaml:"docs_dir" koanf:"docs_dir"`
	DataDir string   `yaml:"data_dir" koanf:"data_dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`

	Chunk     ChunkConfig     `yaml:"chunk" koanf:"chunk"`
	Retrieval RetrievalConfig `yaml:"retrieval" koanf:"retrieval"`
	Answer    AnswerConfig    `yaml:"answer" koanf:"answer"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Telegram  TelegramConfig  `yaml:"telegram" koanf:"telegram"`
}

// ChunkConfig holds passage-splitting parameters.
type ChunkConfig struct {
	// Size is the maximum passage length in characters.
	Size int `yaml:"size" koanf:"size"`
	// Overlap is the number of characters shared between consecutive
	// passages. Must be strictly less than Size.
	Overlap int `yaml:"overlap" koanf:"overlap"`
}

// RetrievalConfig holds search and relevance-gate parameters.
type RetrievalConfig struct {
	// TopK is the number of nearest passages fetched per query.
	TopK int `yaml:"top_k" koanf:"top_k"`
	// MinSimilarity is the cosine-similarity acceptance threshold for the
	// best match. A top score >= MinSimilarity is accepted. Calibrate this
	// against your own corpus and embedding model; there is no universal
	// value.
	MinSimilarity float64 `yaml:"min_similarity" koanf:"min_similarity"`
	// MaxContextChars caps the assembled context length.
	MaxContextChars int `yaml:"max_context_chars" koanf:"max_context_chars"`
}

// AnswerConfig holds composer parameters.
type AnswerConfig struct {
	Mode AnswerMode `yaml:"mode" koanf:"mode"`
	// TimeoutSeconds bounds each LLM generation call.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// TelegramConfig holds the Telegram bot integration settings.
type TelegramConfig struct {
	Token string `yaml:"token" koanf:"token"`
}
