package memory

import "notably-be/internal/entity"

// DefaultCatalog is the demo inventory the catalog boots with.
func DefaultCatalog() []*entity.Product {
	return []*entity.Product{
		{
			Name:     "Echo Dot",
			Price:    49.99,
			Category: "Electronics",
			Image:    "https://via.placeholder.com/150",
			Rating:   4.5,
		},
		{
			Name:     "Coffee Mug",
			Price:    12.5,
			Category: "Home",
			Image:    "https://via.placeholder.com/150",
			Rating:   4.0,
		},
		{
			Name:     "The Sip T-Shirt",
			Price:    20.0,
			Category: "Clothing",
			Image:    "https://via.placeholder.com/150",
			Rating:   5.0,
		},
	}
}
