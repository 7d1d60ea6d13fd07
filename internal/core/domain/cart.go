package domain

import (
	"errors"
	"strconv"
)

// ErrNoSession is returned by cart operations for a member who has not
// logged in since the cart store last saw them.
var ErrNoSession = errors.New("no active session")

// Cart maps product id to quantity. Stored quantities are always >= 1; a
// zero or negative update removes the entry instead.
type Cart map[int]int

// ParseQuantity parses a submitted quantity field. Only non-negative
// integer syntax is accepted; anything else is rejected rather than
// coerced.
func ParseQuantity(raw string) (int, bool) {
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < 0 {
		return 0, false
	}
	return qty, true
}

// LineItem is a priced view of one cart entry. It is derived on every read
// and never stored.
type LineItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int    `json:"subtotal"`
}

// Price joins the cart against the catalog and returns the line items and
// the running total. Items are emitted in catalog order so the result is
// deterministic; cart entries whose product id is not in the catalog are
// skipped and contribute nothing.
func (c Cart) Price(catalog *Catalog) ([]LineItem, int) {
	items := make([]LineItem, 0, len(c))
	total := 0
	for _, p := range catalog.Products() {
		qty, ok := c[p.ID]
		if !ok {
			continue
		}
		subtotal := p.UnitPrice * qty
		total += subtotal
		items = append(items, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  qty,
			Subtotal:  subtotal,
		})
	}
	return items, total
}
