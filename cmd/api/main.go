package main

import (
	"context"
	"flag"
	"os"

	"manualqa/internal/config"
	"manualqa/internal/data/redisStore"
	"manualqa/internal/data/store"
	"manualqa/internal/domain/jobModel"
	"manualqa/internal/domain/sessionModel"
	"manualqa/internal/handlers"
	"manualqa/internal/job"
	"manualqa/internal/mcpserver"
	"manualqa/internal/rag"
	"manualqa/internal/rag/chunker"
	"manualqa/internal/rag/embedding"
	"manualqa/internal/rag/embedding/googleEmbedding"
	"manualqa/internal/rag/embedding/openaiEmbedding"
	"manualqa/internal/rag/ingest"
	"manualqa/internal/rag/llm"
	"manualqa/internal/rag/llm/gemini"
	"manualqa/internal/rag/llm/openaiLLM"
	"manualqa/internal/rag/search/openSearchDB"
	"manualqa/internal/rag/tokenizer"
	"manualqa/internal/server"
	"manualqa/internal/worker"
	"manualqa/pkg/logger_i"
)

// @title        Manual QA API
// @version      1.0
// @description  Question answering over ingested Korean product manuals.
// @BasePath     /
func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("Main")

	mcpMode := flag.Bool("mcp", false, "serve tools over stdio instead of http")
	flag.Parse()

	ragService := buildRagService(logger)

	if *mcpMode {
		if err := mcpserver.NewServer(ragService).Run(context.Background()); err != nil {
			logger.Error("mcp server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	jobStore := buildJobStore(logger)
	sessions := buildSessionLog(logger)

	jobs := job.NewJobService(jobStore)

	counter, _ := tokenizer.Get()
	pipeline := ingest.NewPipeline(
		chunker.New(counter, config.MaxTokensPerChunk),
		embedding.NewManager(embeddingClient(logger)),
		openSearchDB.GetStore(),
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	worker.NewPool(jobs, pipeline).Start(workerCtx)

	srv := server.CreateServer(handlers.NewHandler(ragService, jobs, sessions))

	go func() {
		logger.Info("server listening", "addr", config.ServerListenAddr)
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

	server.ShutDownHandler(srv, cancelWorkers)
}

func buildRagService(logger *logger_i.Logger) rag.Service {
	counter, err := tokenizer.Get()
	if err != nil || counter == nil {
		logger.Error("tokenizer unavailable", "error", err)
		os.Exit(1)
	}

	docStore := openSearchDB.GetStore()
	if docStore == nil {
		logger.Error("opensearch unavailable, set OPENSEARCH_ENDPOINT")
		os.Exit(1)
	}

	return rag.NewService(
		embedding.NewManager(embeddingClient(logger)),
		docStore,
		llmProvider(logger),
	)
}

func embeddingClient(logger *logger_i.Logger) embedding.Client {
	if config.EmbeddingProvider == "openai" {
		client := openaiEmbedding.GetClient()
		if client == nil {
			logger.Error("openai embedding client unavailable")
			os.Exit(1)
		}
		return client
	}

	client := googleEmbedding.GetClient()
	if client == nil {
		logger.Error("gemini embedding client unavailable")
		os.Exit(1)
	}
	return client
}

func llmProvider(logger *logger_i.Logger) llm.Provider {
	if config.LLMProvider == "openai" {
		provider := openaiLLM.GetProvider()
		if provider == nil {
			logger.Error("openai llm unavailable")
			os.Exit(1)
		}
		return provider
	}

	provider := gemini.GetProvider()
	if provider == nil {
		logger.Error("gemini llm unavailable")
		os.Exit(1)
	}
	return provider
}

func buildJobStore(logger *logger_i.Logger) jobModel.JobStore {
	redis, err := redisStore.NewStore(config.RedisJobStore)
	if err != nil {
		logger.Warn("redis unavailable, job state will not survive restarts", "error", err)
		return store.NewInMemoryJobStore()
	}
	return store.NewRedisJobStore(redis)
}

func buildSessionLog(logger *logger_i.Logger) sessionModel.SessionLog {
	redis, err := redisStore.NewStore(config.RedisSessionStore)
	if err != nil {
		logger.Warn("redis unavailable, session log is in-memory only", "error", err)
		return store.NewInMemorySessionStore()
	}
	return store.NewRedisSessionStore(redis)
}
