package category

// Category is a flat label for products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
