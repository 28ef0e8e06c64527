package bootstrap

import (
	"context"
	"log"
	"time"

	"echoparse-be/internal/config"
	"echoparse-be/internal/controller"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/internal/repository/implementation"
	"echoparse-be/internal/service"
	"echoparse-be/pkg/embedding"
	"echoparse-be/pkg/insight"
	"echoparse-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InsightController controller.IInsightController
	MetricsController controller.IMetricsController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	embeddingProvider = embedding.NewOpenAIProvider(
		cfg.Keys.OpenAI,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.EmbeddingDimensions,
	)
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider, rdb, 24*time.Hour, sysLogger)
	log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.OpenAI,
		cfg.Ai.OpenAIBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	reviewRepo := implementation.NewReviewRepository(db)
	metricRepo := implementation.NewDashboardMetricRepository(db)
	queryLogRepo := implementation.NewQueryLogRepository(db)

	// 5. Pipeline & Services
	pipeline := insight.NewPipeline(embeddingProvider, reviewRepo, llmProvider, sysLogger)

	publisherService := service.NewPublisherService(cfg.Keys.QueryTopic, pubSub)
	auditService := service.NewAuditService(pubSub, cfg.Keys.QueryTopic, queryLogRepo, sysLogger)

	insightService := service.NewInsightService(pipeline, publisherService, sysLogger)
	metricsService := service.NewMetricsService(metricRepo)
	ratingService := service.NewRatingService(cfg.Stores.AppStoreLookupURL, cfg.Stores.PlayStoreURL, sysLogger)

	// 6. Controllers
	insightController := controller.NewInsightController(insightService)
	metricsController := controller.NewMetricsController(metricsService, ratingService)
	healthController := controller.NewHealthController()

	return &Container{
		InsightController: insightController,
		MetricsController: metricsController,
		HealthController:  healthController,
		AuditService:      auditService,
	}
}
