package controller

import (
	"notably-be/internal/dto"
	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVoiceAnnotationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type voiceAnnotationController struct {
	service service.IVoiceAnnotationService
}

func NewVoiceAnnotationController(service service.IVoiceAnnotationService) IVoiceAnnotationController {
	return &voiceAnnotationController{service: service}
}

func (c *voiceAnnotationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/voice-annotations")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *voiceAnnotationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateVoiceAnnotationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create voice annotation", res))
}

func (c *voiceAnnotationController) List(ctx *fiber.Ctx) error {
	pageId, err := uuid.Parse(ctx.Query("page_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "a valid page_id is required")
	}

	res, err := c.service.ListByPage(ctx.Context(), pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get voice annotations", res))
}

func (c *voiceAnnotationController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "voice annotation not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show voice annotation", res))
}

func (c *voiceAnnotationController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	deleted, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "voice annotation not found")
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete voice annotation", nil))
}
