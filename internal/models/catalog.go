package models

// Product represents a single catalog entry belonging to exactly one category.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

// Category is a top-level catalog grouping holding an ordered product list.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}

// ProductsData is the root document: the entire catalog persisted as one
// JSON file, loaded and rewritten wholesale on every mutation.
type ProductsData struct {
	Categories []Category `json:"categories"`
}

// Normalize guarantees the invariant that the root document always carries a
// categories array, never null.
func (d *ProductsData) Normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
}

// FindCategory returns the index of the category with the given ID, or -1.
func (d *ProductsData) FindCategory(id string) int {
	for i, cat := range d.Categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}

// FindProduct returns the index of the product with the given ID, or -1.
func (c *Category) FindProduct(id string) int {
	for i, p := range c.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
