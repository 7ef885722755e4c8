package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"notably-be/internal/constant"
	"notably-be/internal/dto"
	"notably-be/internal/entity"
	"notably-be/internal/repository/memory"

	"github.com/patrickmn/go-cache"
)

const categoriesCacheKey = "categories"

type ICatalogService interface {
	List(ctx context.Context, query *dto.ListProductsQuery) (*dto.ProductListResponse, error)
	Create(ctx context.Context, req *dto.NewProduct) (*dto.ProductResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	productRepo      *memory.ProductRepository
	categoriesCache  *cache.Cache
	publisherService IPublisherService
	createdTopic     string
}

func NewCatalogService(
	productRepo *memory.ProductRepository,
	publisherService IPublisherService,
	createdTopic string,
) ICatalogService {
	return &catalogService{
		productRepo:      productRepo,
		categoriesCache:  cache.New(30*time.Second, time.Minute),
		publisherService: publisherService,
		createdTopic:     createdTopic,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:       p.Id,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
		Rating:   p.Rating,
	}
}

func (s *catalogService) List(ctx context.Context, query *dto.ListProductsQuery) (*dto.ProductListResponse, error) {
	filtered := s.productRepo.All()

	if query.Query != "" {
		q := strings.ToLower(query.Query)
		kept := filtered[:0:0]
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), q) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if query.Category != "" {
		kept := filtered[:0:0]
		for _, p := range filtered {
			if p.Category == query.Category {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	start := (query.Page - 1) * query.PerPage
	end := start + query.PerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]*dto.ProductResponse, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, toProductResponse(p))
	}

	return &dto.ProductListResponse{
		Items:   items,
		Page:    query.Page,
		PerPage: query.PerPage,
		Total:   len(filtered),
	}, nil
}

func (s *catalogService) Create(ctx context.Context, req *dto.NewProduct) (*dto.ProductResponse, error) {
	category := req.Category
	if category == "" {
		category = constant.DefaultProductCategory
	}
	image := req.Image
	if image == "" {
		image = constant.DefaultProductImage
	}

	created := s.productRepo.Append(&entity.Product{
		Name:     req.Name,
		Price:    req.Price,
		Category: category,
		Image:    image,
		Rating:   req.Rating,
	})

	// A new product may introduce a new category.
	s.categoriesCache.Delete(categoriesCacheKey)

	res := toProductResponse(created)

	if s.publisherService != nil {
		if payload, err := json.Marshal(res); err == nil {
			_ = s.publisherService.Publish(ctx, s.createdTopic, payload)
		}
	}

	return res, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	if cached, found := s.categoriesCache.Get(categoriesCacheKey); found {
		return cached.([]string), nil
	}

	seen := make(map[string]struct{})
	for _, p := range s.productRepo.All() {
		category := p.Category
		if category == "" {
			category = constant.DefaultProductCategory
		}
		seen[category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	s.categoriesCache.Set(categoriesCacheKey, categories, cache.DefaultExpiration)
	return categories, nil
}
