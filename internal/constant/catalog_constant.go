package constant

const (
	DefaultProductCategory = "Uncategorized"
	DefaultProductImage    = "https://via.placeholder.com/150"

	DefaultPageSize = 5
)
