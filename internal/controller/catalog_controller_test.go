package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/repository/memory"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newCatalogTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	repo := memory.NewProductRepository()
	repo.Seed(memory.DefaultCatalog()...)
	svc := service.NewCatalogService(repo, nil, "PRODUCT_CREATED")
	NewCatalogController(svc).RegisterRoutes(app)
	return app
}

func TestListProductsSecondPage(t *testing.T) {
	app := newCatalogTestApp()

	req := httptest.NewRequest(http.MethodGet, "/products?page=2&per_page=1", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])

	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Coffee Mug", items[0].(map[string]interface{})["name"])
}

func TestListProductsRejectsBadPagination(t *testing.T) {
	app := newCatalogTestApp()

	tests := []struct {
		name string
		url  string
	}{
		{name: "non-numeric page", url: "/products?page=abc"},
		{name: "zero per_page", url: "/products?per_page=0"},
		{name: "negative page", url: "/products?page=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	app := newCatalogTestApp()

	resp, body := postJSON(t, app, "/products", map[string]interface{}{
		"name":  "Desk Lamp",
		"price": "34.99",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, 34.99, data["price"])
	assert.Equal(t, "Uncategorized", data["category"])
	assert.Equal(t, float64(0), data["rating"])
}

func TestCreateProductTrimsName(t *testing.T) {
	app := newCatalogTestApp()

	resp, body := postJSON(t, app, "/products", map[string]interface{}{
		"name":  "  Desk Lamp  ",
		"price": 10,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Desk Lamp", data["name"])
}

func TestCreateProductValidation(t *testing.T) {
	app := newCatalogTestApp()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{
			name:    "missing name",
			payload: map[string]interface{}{"price": 10},
		},
		{
			name:    "unparseable price",
			payload: map[string]interface{}{"name": "Widget", "price": "abc"},
		},
		{
			name:    "missing price",
			payload: map[string]interface{}{"name": "Widget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/products", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestCreateProductRatingFallback(t *testing.T) {
	app := newCatalogTestApp()

	resp, body := postJSON(t, app, "/products", map[string]interface{}{
		"name":   "Widget",
		"price":  10,
		"rating": "not a number",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["rating"])
}

func TestListCategories(t *testing.T) {
	app := newCatalogTestApp()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	categories := body["data"].([]interface{})
	assert.Equal(t, []interface{}{"Clothing", "Electronics", "Home"}, categories)
}
