package bootstrap

import (
	"log"

	"ai-chatdesk-be/internal/config"
	"ai-chatdesk-be/internal/controller"
	"ai-chatdesk-be/internal/handler"
	"ai-chatdesk-be/internal/pkg/logger"
	"ai-chatdesk-be/internal/repository/contract"
	"ai-chatdesk-be/internal/repository/implementation"
	"ai-chatdesk-be/internal/repository/memory"
	"ai-chatdesk-be/internal/service"
	"ai-chatdesk-be/internal/websocket"
	"ai-chatdesk-be/pkg/backend"
	"ai-chatdesk-be/pkg/pathresolver"
	"ai-chatdesk-be/pkg/resource"
	"ai-chatdesk-be/pkg/reveal"
	"ai-chatdesk-be/pkg/staging"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	UploadController   controller.IUploadController
	StagingController  controller.IStagingController
	ResourceController controller.IResourceController

	// WebSockets & Streaming
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

// NewContainer wires the dependency graph. A nil db selects the
// in-memory stores; nothing survives a restart in that mode.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Stores
	var sessionRepo contract.ChatSessionRepository
	var messageRepo contract.ChatMessageRepository
	var indexRepo contract.DocumentIndexRepository
	if db != nil {
		sessionRepo = implementation.NewChatSessionRepository(db)
		messageRepo = implementation.NewChatMessageRepository(db)
		indexRepo = implementation.NewDocumentIndexRepository(db)
		log.Println("[INFO] Using sqlite-backed stores")
	} else {
		sessionRepo = memory.NewSessionStore()
		messageRepo = memory.NewMessageStore()
		indexRepo = memory.NewDocumentIndex()
		log.Println("[INFO] Using in-memory stores (no DB_PATH configured)")
	}

	// 4. Infrastructure
	provider := backend.NewHTTPProvider(cfg.Backend.BaseURL, cfg.Backend.TimeoutSeconds)
	resolver := pathresolver.New()
	locator := resource.NewLocator()
	stagingArea := staging.New()
	pacer := reveal.NewPacer(cfg.Reveal.ChunkRunes, cfg.Reveal.IntervalMs)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.StreamLogFilePath)
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 5. Services
	streamService := service.NewStreamService(pubSub, pacer, wsLogger)
	chatService := service.NewChatService(sessionRepo, messageRepo, provider, stagingArea, streamService, sysLogger)
	uploadService := service.NewUploadService(resolver, provider, indexRepo, stagingArea, streamService, sysLogger)
	stagingService := service.NewStagingService(stagingArea)
	resourceService := service.NewResourceService(locator, sysLogger)

	// 6. Stream Handler (bus -> websocket bridge)
	streamHandler := handler.NewStreamHandler(pubSub, wsHub, wsLogger)

	return &Container{
		ChatController:     controller.NewChatController(chatService),
		UploadController:   controller.NewUploadController(uploadService),
		StagingController:  controller.NewStagingController(stagingService),
		ResourceController: controller.NewResourceController(resourceService),

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
