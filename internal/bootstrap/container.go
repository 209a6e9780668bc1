package bootstrap

import (
	"log"

	"ai-support-be/internal/config"
	"ai-support-be/internal/controller"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/internal/service"
	"ai-support-be/pkg/agent/escalation"
	"ai-support-be/pkg/agent/knowledge"
	"ai-support-be/pkg/agent/orchestrator"
	"ai-support-be/pkg/agent/router"
	"ai-support-be/pkg/embedding"
	"ai-support-be/pkg/llm/factory"
	"ai-support-be/pkg/rag/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	ConversationController controller.IConversationController
	KnowledgeController    controller.IKnowledgeController
	ExperimentController   controller.IExperimentController
	FeedbackController     controller.IFeedbackController
	AuthController         controller.IAuthController
	AdminController        controller.IAdminController

	// Background services, started by main.go
	ConsumerService     service.IConsumerService
	ActionLoggerService service.IActionLoggerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. AI backends
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		log.Printf("[WARN] Unknown embedding provider %q, running in keyword-only mode", cfg.Ai.EmbeddingProvider)
	}
	embedder := embedding.NewService(embeddingProvider, log.Default())

	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
	if err != nil {
		// The knowledge agent degrades to template replies without an LLM.
		log.Printf("[WARN] Failed to initialize LLM provider: %v (using template replies)", err)
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Agent pipeline
	retriever := search.NewRetriever(embedder, log.Default())
	classifier := router.NewClassifier(embedder, log.Default())
	knowledgeAgent := knowledge.NewResponder(retriever, llmProvider, cfg.Pipeline.AutoSendThreshold, log.Default())
	escalationAgent := escalation.NewResponder(log.Default())
	pipeline := orchestrator.New(classifier, knowledgeAgent, escalationAgent, cfg.Pipeline.TechSupportThreshold, log.Default())

	// 5. Services
	chatService := service.NewChatService(uowFactory, pipeline, pubSub, cfg.Pipeline.AgentActionTopic)
	conversationService := service.NewConversationService(uowFactory, pubSub, cfg.Pipeline.AgentActionTopic)
	knowledgeService := service.NewKnowledgeService(uowFactory, retriever, pubSub, cfg.Pipeline.ReembedTopic)
	experimentService := service.NewExperimentService(uowFactory)
	feedbackService := service.NewFeedbackService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg.Auth)

	consumerService := service.NewConsumerService(pubSub, cfg.Pipeline.ReembedTopic, uowFactory, embedder)
	actionLoggerService := service.NewActionLoggerService(pubSub, cfg.Pipeline.AgentActionTopic, uowFactory)

	// 6. Controllers
	return &Container{
		ChatController:         controller.NewChatController(chatService),
		ConversationController: controller.NewConversationController(conversationService),
		KnowledgeController:    controller.NewKnowledgeController(knowledgeService),
		ExperimentController:   controller.NewExperimentController(experimentService),
		FeedbackController:     controller.NewFeedbackController(feedbackService),
		AuthController:         controller.NewAuthController(authService),
		AdminController:        controller.NewAdminController(sysLogger),

		ConsumerService:     consumerService,
		ActionLoggerService: actionLoggerService,
	}
}
