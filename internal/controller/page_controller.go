package controller

import (
	"notably-be/internal/dto"
	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pageController struct {
	service service.IPageService
}

func NewPageController(service service.IPageService) IPageController {
	return &pageController{service: service}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pages")
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}

func (c *pageController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update page", res))
}

func (c *pageController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	deleted, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete page", nil))
}
