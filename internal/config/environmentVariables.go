package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	NoAuthBypass                = true //dev only - flip for prod and set AUTH_TOKEN
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//embedding model output size - Titan/OpenAI both support 1024
	EmbeddingOutputDimensionality = 1024
	EmbeddingBatchSize            = 10
	EmbeddingMaxChars             = 30000
	EmbeddingMaxRetries           = 3
	EmbeddingRetryBaseDelay       = 2 * time.Second

	//chunking
	MaxTokensPerChunk = 512

	//answer generation
	MaxContextLength = 4000
	HybridAlpha      = 0.7
	DefaultSearchK   = 5
	SourcePreviewLen = 200

	//index writes
	IndexBatchSize = 100

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//opensearch
	OpenSearchConnectTimeout = 60 * time.Second

	//llm + embedding providers: "gemini" or "openai"
	DefaultLLMProvider       = "gemini"
	DefaultEmbeddingProvider = "gemini"

	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GeminiEmbeddingModel = "gemini-embedding-001"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisSessionStore = 1

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisSessionStoreTTL = 7 * 24 * time.Hour

	SessionLogKey = "query_sessions"
)

var (
	AuthToken           = os.Getenv("AUTH_TOKEN")
	GeminiAPIKey        = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey        = os.Getenv("OPENAI_API_KEY")
	LLMProvider         = envOr("LLM_PROVIDER", DefaultLLMProvider)
	EmbeddingProvider   = envOr("EMBEDDING_PROVIDER", DefaultEmbeddingProvider)
	OpenSearchEndpoint  = os.Getenv("OPENSEARCH_ENDPOINT")
	OpenSearchUsername  = os.Getenv("OPENSEARCH_USERNAME")
	OpenSearchPassword  = os.Getenv("OPENSEARCH_PASSWORD")
	OpenSearchIndexName = envOr("OPENSEARCH_INDEX_NAME", "manual-index")
)

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
