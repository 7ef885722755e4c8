package controller

import (
	"context"
	"time"

	"notably-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// IHealthController serves the meta and health endpoints. Payloads here are
// plain maps, not the standard envelope: probes and uptime checks expect
// flat shapes.
type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Live(ctx *fiber.Ctx) error
	Ready(ctx *fiber.Ctx) error
}

type healthController struct {
	cfg *config.Config
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthController(cfg *config.Config, db *gorm.DB, rdb *redis.Client) IHealthController {
	return &healthController{cfg: cfg, db: db, rdb: rdb}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/info", c.Info)
	r.Get("/health", c.Health)
	r.Get("/health/live", c.Live)
	r.Get("/health/ready", c.Ready)
	r.Get("/health/info", c.Info)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Welcome to " + c.cfg.App.Name,
		"version": c.cfg.App.Version,
		"health":  "/health",
	})
}

func (c *healthController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":        c.cfg.App.Name,
		"version":     c.cfg.App.Version,
		"environment": c.cfg.App.Environment,
		"features": fiber.Map{
			"websockets": c.cfg.App.EnableWebsockets,
			"tracing":    c.cfg.App.OtelEnabled,
		},
	})
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   c.cfg.App.Name,
	})
}

func (c *healthController) Live(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready pings every configured dependency with a short deadline. A single
// failing dependency degrades the whole probe to 503 but each check is
// still reported on its own.
func (c *healthController) Ready(ctx *fiber.Ctx) error {
	checkCtx, cancel := context.WithTimeout(ctx.Context(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{}
	ready := true

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			err = sqlDB.PingContext(checkCtx)
		}
		if err != nil {
			checks["database"] = fiber.Map{"status": "down", "error": err.Error()}
			ready = false
		} else {
			checks["database"] = fiber.Map{"status": "up"}
		}
	}

	if c.rdb != nil {
		if err := c.rdb.Ping(checkCtx).Err(); err != nil {
			checks["redis"] = fiber.Map{"status": "down", "error": err.Error()}
			ready = false
		} else {
			checks["redis"] = fiber.Map{"status": "up"}
		}
	}

	status := "ready"
	code := fiber.StatusOK
	if !ready {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return ctx.Status(code).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
