package ports

import (
	"context"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// QuantityUpdate is one submitted quantity field: the raw string is parsed
// and validated by the service, never coerced.
type QuantityUpdate struct {
	ProductID int
	Quantity  string
}

// CartView is the priced rendering of a cart, shared by the cart page and
// the checkout summary.
type CartView struct {
	Items []domain.LineItem
	Total int
}

type CartService interface {
	StartSession(ctx context.Context, memberID int64) error
	// ListProducts returns the catalog for a member with an active session.
	ListProducts(ctx context.Context, memberID int64) ([]domain.Product, error)
	AddItem(ctx context.Context, memberID int64, productID int) (*CartView, error)
	UpdateQuantities(ctx context.Context, memberID int64, updates []QuantityUpdate) (*CartView, error)
	ViewCart(ctx context.Context, memberID int64) (*CartView, error)
	Checkout(ctx context.Context, memberID int64) (*CartView, error)
}
