package bootstrap

import (
	"log"
	"os"

	"github.com/bibincs/hackathonchatbot/internal/config"
	"github.com/bibincs/hackathonchatbot/internal/controller"
	"github.com/bibincs/hackathonchatbot/internal/pkg/logger"
	"github.com/bibincs/hackathonchatbot/internal/repository/memory"
	"github.com/bibincs/hackathonchatbot/internal/service"
	"github.com/bibincs/hackathonchatbot/pkg/corpus"
	"github.com/bibincs/hackathonchatbot/pkg/embedding"
	"github.com/bibincs/hackathonchatbot/pkg/llm/factory"
	"github.com/bibincs/hackathonchatbot/pkg/rag/retriever"
	"github.com/bibincs/hackathonchatbot/pkg/rag/session"
	"github.com/bibincs/hackathonchatbot/pkg/rag/vector"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Exposed for shutdown hooks
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := log.New(os.Stdout, "[RAG] ", log.LstdFlags)

	// 2. Corpus
	records, err := corpus.LoadRecords(cfg.App.DataFilePath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load airport data from %s: %v", cfg.App.DataFilePath, err)
	}
	chunks := corpus.BuildChunks(records)
	catalogIndex := corpus.NewIndex(records)
	sysLogger.Info("bootstrap", "Airport corpus loaded", map[string]interface{}{
		"records":       len(records),
		"chunks":        len(chunks),
		"catalog_items": len(catalogIndex.Items()),
	})

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewAzureProvider(
			cfg.Azure.Endpoint,
			cfg.Azure.ApiKey,
			cfg.Azure.ApiVersion,
			cfg.Azure.EmbeddingDeployment,
		)
		log.Printf("[INFO] Using Embedding Provider: AZURE (%s)", cfg.Azure.EmbeddingDeployment)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OllamaChatModel,
		cfg.Ai.OllamaBaseURL,
		factory.AzureSettings{
			Endpoint:   cfg.Azure.Endpoint,
			ApiKey:     cfg.Azure.ApiKey,
			ApiVersion: cfg.Azure.ApiVersion,
			Deployment: cfg.Azure.ChatDeployment,
		},
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 4. Vector store. A partial embedding run is unusable, so any failure
	// here is fatal to startup.
	vectorStore := vector.NewStore(embeddingProvider, ragLogger)
	if err := vectorStore.Build(chunks); err != nil {
		log.Fatalf("[FATAL] Failed to embed airport corpus: %v", err)
	}

	ragRetriever := retriever.NewRetriever(vectorStore, ragLogger)

	// 5. Sessions
	sessionRepo := memory.NewSessionRepository()
	sessionManager := session.NewManager(sessionRepo)

	// 6. Services
	assistantService := service.NewAssistantService(llmProvider, ragRetriever, catalogIndex, sessionManager)
	directionsService := service.NewDirectionsService()

	// 7. Controllers
	assistantController := controller.NewAssistantController(assistantService, directionsService)

	return &Container{
		AssistantController: assistantController,
		Logger:              sysLogger,
	}
}
