package ports

import (
	"context"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// CartStore holds one cart per logged-in member. A member id is present in
// the store if and only if that member has logged in since the store last
// saw them; presence of the entry is what this system calls a session.
type CartStore interface {
	// StartSession creates an empty cart for the member if none exists.
	// It must not clear a cart that is already there — a repeat login
	// keeps the in-progress cart.
	StartSession(ctx context.Context, memberID int64) error
	HasSession(ctx context.Context, memberID int64) (bool, error)
	Get(ctx context.Context, memberID int64) (domain.Cart, error)
	// IncrementItem adds one unit of the product, starting from zero when
	// the product is not yet in the cart.
	IncrementItem(ctx context.Context, memberID int64, productID int) error
	// SetQuantity replaces the stored quantity. Callers must only pass
	// quantities >= 1; removal goes through RemoveItem.
	SetQuantity(ctx context.Context, memberID int64, productID, quantity int) error
	RemoveItem(ctx context.Context, memberID int64, productID int) error
}
