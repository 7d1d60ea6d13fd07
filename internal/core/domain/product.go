package domain

// Product is a single purchasable item. The set of products is fixed at
// startup; identity is the numeric id.
type Product struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
}

// Catalog is an immutable, ordered collection of products. It is built once
// and only read afterwards, so it is safe to share across goroutines.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// NewCatalog builds a catalog preserving the order of the given products.
func NewCatalog(products []Product) *Catalog {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Products returns the catalog in its fixed display order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Find returns the product with the given id, if present.
func (c *Catalog) Find(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// DefaultCatalog returns the stand's fruit selection.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{ID: 1, Name: "Apple", UnitPrice: 50},
		{ID: 2, Name: "Mango", UnitPrice: 60},
		{ID: 3, Name: "Guava", UnitPrice: 50},
		{ID: 4, Name: "Papaya", UnitPrice: 60},
		{ID: 5, Name: "Pineapple", UnitPrice: 60},
		{ID: 6, Name: "Watermelon", UnitPrice: 100},
		{ID: 7, Name: "Kiwi", UnitPrice: 30},
		{ID: 8, Name: "Passion Fruit", UnitPrice: 30},
		{ID: 9, Name: "Dragon Fruit", UnitPrice: 60},
		{ID: 10, Name: "Peach", UnitPrice: 60},
	})
}
