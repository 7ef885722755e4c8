package service

import (
	"context"
	"testing"

	"notably-be/internal/dto"
	"notably-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func newTestCatalogService() ICatalogService {
	repo := memory.NewProductRepository()
	repo.Seed(memory.DefaultCatalog()...)
	return NewCatalogService(repo, nil, "PRODUCT_CREATED")
}

func TestCatalogCreateAssignsSequentialIds(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.NewProduct{Name: "Desk Lamp", Price: 34.99, Category: "Home"})
	assert.NoError(t, err)
	assert.Equal(t, 4, first.Id)

	second, err := svc.Create(ctx, &dto.NewProduct{Name: "Notebook", Price: 5.0})
	assert.NoError(t, err)
	assert.Equal(t, 5, second.Id)
}

func TestCatalogCreateAppliesDefaults(t *testing.T) {
	svc := newTestCatalogService()

	res, err := svc.Create(context.Background(), &dto.NewProduct{Name: "Mystery Item", Price: 9.99})
	assert.NoError(t, err)
	assert.Equal(t, "Uncategorized", res.Category)
	assert.Equal(t, "https://via.placeholder.com/150", res.Image)
	assert.Equal(t, 0.0, res.Rating)
}

func TestCatalogListPagination(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	res, err := svc.List(ctx, &dto.ListProductsQuery{Page: 2, PerPage: 1})
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Id)
	assert.Equal(t, "Coffee Mug", res.Items[0].Name)

	// Out-of-range page yields an empty slice, not an error.
	res, err = svc.List(ctx, &dto.ListProductsQuery{Page: 9, PerPage: 5})
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.Total)
}

func TestCatalogListFilters(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	tests := []struct {
		name      string
		query     dto.ListProductsQuery
		wantTotal int
		wantFirst string
	}{
		{
			name:      "name substring is case-insensitive",
			query:     dto.ListProductsQuery{Page: 1, PerPage: 5, Query: "echo"},
			wantTotal: 1,
			wantFirst: "Echo Dot",
		},
		{
			name:      "category is exact",
			query:     dto.ListProductsQuery{Page: 1, PerPage: 5, Category: "Home"},
			wantTotal: 1,
			wantFirst: "Coffee Mug",
		},
		{
			name:      "no match",
			query:     dto.ListProductsQuery{Page: 1, PerPage: 5, Query: "zzz"},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(ctx, &tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, res.Items[0].Name)
			}
		})
	}
}

func TestCatalogCategoriesSortedAndInvalidated(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	categories, err := svc.Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Clothing", "Electronics", "Home"}, categories)

	// Creating an uncategorized product must bust the cached list.
	_, err = svc.Create(ctx, &dto.NewProduct{Name: "Mystery Item", Price: 1.0})
	assert.NoError(t, err)

	categories, err = svc.Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Clothing", "Electronics", "Home", "Uncategorized"}, categories)
}
