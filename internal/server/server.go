package server

import (
	"log"

	"notably-be/internal/bootstrap"
	"notably-be/internal/config"
	"notably-be/internal/pkg/serverutils"
	ws "notably-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Session-Id",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	// Legacy flat routes plus health/meta live at the root.
	c.HealthController.RegisterRoutes(app)
	c.ChatbotController.RegisterRoutes(app)
	c.CatalogController.RegisterRoutes(app)

	api := app.Group("/api/v1")
	c.NotebookController.RegisterRoutes(api)
	c.PageController.RegisterRoutes(api)
	c.VoiceAnnotationController.RegisterRoutes(api)

	if cfg.App.EnableWebsockets {
		app.Use("/ws", func(ctx *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(ctx) {
				return ctx.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws/feed", websocket.New(func(conn *websocket.Conn) {
			ws.ServeWs(c.FeedHub, conn)
		}))
	}
}
