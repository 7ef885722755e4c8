package controller

import (
	"strings"

	"notably-be/internal/dto"
	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/chat/history", c.History)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	sessionId := ctx.Get("X-Session-Id")

	res, err := c.service.Chat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *chatbotController) History(ctx *fiber.Ctx) error {
	res := c.service.History(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
