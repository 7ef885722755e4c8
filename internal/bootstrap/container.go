package bootstrap

import (
	"context"
	"log"

	"notably-be/internal/config"
	"notably-be/internal/controller"
	"notably-be/internal/pkg/logger"
	"notably-be/internal/repository/memory"
	"notably-be/internal/repository/unitofwork"
	"notably-be/internal/service"
	"notably-be/internal/websocket"

	pktNats "notably-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController          controller.IHealthController
	ChatbotController         controller.IChatbotController
	CatalogController         controller.ICatalogController
	NotebookController        controller.INotebookController
	PageController            controller.IPageController
	VoiceAnnotationController controller.IVoiceAnnotationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	FeedHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

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

	// WebSocket Hub
	feedLogger := logger.NewIsolatedLogger("logs/feed.log")
	feedHub := websocket.NewHub(rdb, feedLogger)
	go feedHub.Run()

	// 4. In-Memory Repositories
	productRepo := memory.NewProductRepository()
	productRepo.Seed(memory.DefaultCatalog()...)
	historyRepo := memory.NewChatHistoryRepository(cfg.Chat.HistoryLimit)
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.ChatExchange,
		cfg.Topics.ProductCreated,
		feedHub,
		sysLogger,
	)
	chatbotService := service.NewChatbotService(historyRepo, sessionRepo, publisherService, cfg.Topics.ChatExchange)
	catalogService := service.NewCatalogService(productRepo, publisherService, cfg.Topics.ProductCreated)
	notebookService := service.NewNotebookService(uowFactory, natsPub, sysLogger)
	pageService := service.NewPageService(uowFactory, natsPub, sysLogger)
	voiceAnnotationService := service.NewVoiceAnnotationService(uowFactory)

	// 6. Controllers
	return &Container{
		HealthController:          controller.NewHealthController(cfg, db, rdb),
		ChatbotController:         controller.NewChatbotController(chatbotService),
		CatalogController:         controller.NewCatalogController(catalogService),
		NotebookController:        controller.NewNotebookController(notebookService, pageService),
		PageController:            controller.NewPageController(pageService),
		VoiceAnnotationController: controller.NewVoiceAnnotationController(voiceAnnotationService),
		ConsumerService:           consumerService,
		FeedHub:                   feedHub,
	}
}
