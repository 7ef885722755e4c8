package dto

// CreateProductRequest keeps price and rating loosely typed: clients send
// JSON numbers or numeric strings and the controller coerces them, rejecting
// a bad price but defaulting a bad rating to 0.
type CreateProductRequest struct {
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Category string      `json:"category"`
	Image    string      `json:"image"`
	Rating   interface{} `json:"rating"`
}

// NewProduct is the coerced, validated form handed to the catalog service.
type NewProduct struct {
	Name     string
	Price    float64
	Category string
	Image    string
	Rating   float64
}

type ProductResponse struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
}

type ListProductsQuery struct {
	Page     int
	PerPage  int
	Query    string
	Category string
}

type ProductListResponse struct {
	Items   []*ProductResponse `json:"items"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
	Total   int                `json:"total"`
}
