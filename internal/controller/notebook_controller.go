package controller

import (
	"notably-be/internal/dto"
	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListSections(ctx *fiber.Ctx) error
	CreateSection(ctx *fiber.Ctx) error
	ListPages(ctx *fiber.Ctx) error
	CreatePage(ctx *fiber.Ctx) error
}

type notebookController struct {
	service     service.INotebookService
	pageService service.IPageService
}

func NewNotebookController(svc service.INotebookService, pageSvc service.IPageService) INotebookController {
	return &notebookController{service: svc, pageService: pageSvc}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/sections", c.ListSections)
	h.Post(":id/sections", c.CreateSection)
	h.Get(":id/pages", c.ListPages)
	h.Post(":id/pages", c.CreatePage)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	var archived *bool
	if raw := ctx.Query("archived"); raw != "" {
		v := raw == "true" || raw == "1"
		archived = &v
	}

	res, err := c.service.GetAll(ctx.Context(), archived)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create notebook", res))
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", res))
}

func (c *notebookController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNotebookRequest
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
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update notebook", res))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	deleted, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete notebook", nil))
}

func (c *notebookController) ListSections(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSections(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sections", res))
}

func (c *notebookController) CreateSection(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.NotebookId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSection(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create section", res))
}

func (c *notebookController) ListPages(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	page, ok := parsePositiveQueryInt(ctx, "page", 1)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
	}
	perPage, ok := parsePositiveQueryInt(ctx, "per_page", 0)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
	}

	query := dto.ListPagesQuery{
		NotebookId: id,
		Page:       page,
		PerPage:    perPage,
		Query:      ctx.Query("q"),
	}
	if raw := ctx.Query("section_id"); raw != "" {
		sectionId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid section_id")
		}
		query.SectionId = &sectionId
	}

	res, err := c.pageService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get pages", res))
}

func (c *notebookController) CreatePage(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.NotebookId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pageService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "notebook not found")
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create page", res))
}
