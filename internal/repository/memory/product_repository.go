package memory

import (
	"sync"

	"notably-be/internal/entity"
)

// ProductRepository is the process-lifetime catalog store. The list is
// append-only and insertion-ordered; ids are assigned as len+1 under the
// write lock so they stay dense even with concurrent creators.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Seed installs the initial catalog. Ids are reassigned in order.
func (r *ProductRepository) Seed(products ...*entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		copied := *p
		copied.Id = len(r.products) + 1
		r.products = append(r.products, &copied)
	}
}

// Append stores a new product, assigns its id, and returns the stored copy.
func (r *ProductRepository) Append(p *entity.Product) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	copied.Id = len(r.products) + 1
	r.products = append(r.products, &copied)
	return &copied
}

// All returns a snapshot of the catalog in insertion order.
func (r *ProductRepository) All() []*entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*entity.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot
}

func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
