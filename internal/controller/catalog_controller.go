package controller

import (
	"encoding/json"
	"strconv"
	"strings"

	"notably-be/internal/constant"
	"notably-be/internal/dto"
	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/products", c.List)
	r.Post("/products", c.Create)
	r.Get("/categories", c.Categories)
}

// parseFloatValue coerces the loosely typed price/rating fields. JSON
// numbers arrive as float64, but clients also send numeric strings.
func parseFloatValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func parsePositiveQueryInt(ctx *fiber.Ctx, key string, fallback int) (int, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	page, ok := parsePositiveQueryInt(ctx, "page", 1)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
	}
	perPage, ok := parsePositiveQueryInt(ctx, "per_page", constant.DefaultPageSize)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
	}

	query := dto.ListProductsQuery{
		Page:     page,
		PerPage:  perPage,
		Query:    ctx.Query("q"),
		Category: ctx.Query("category"),
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *catalogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	price, ok := parseFloatValue(req.Price)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "a valid price is required")
	}

	// Rating is forgiving where price is strict: junk falls back to 0.
	rating, ok := parseFloatValue(req.Rating)
	if !ok {
		rating = 0
	}

	product := dto.NewProduct{
		Name:     name,
		Price:    price,
		Category: req.Category,
		Image:    req.Image,
		Rating:   rating,
	}

	res, err := c.service.Create(ctx.Context(), &product)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.Categories(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}
