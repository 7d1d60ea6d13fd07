package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
)

// CartService owns the per-member cart lifecycle: session start on login,
// item mutation, and the priced views for the cart page and checkout.
type CartService struct {
	store   ports.CartStore
	catalog *domain.Catalog
	log     zerolog.Logger
}

func NewCartService(store ports.CartStore, catalog *domain.Catalog, log zerolog.Logger) *CartService {
	return &CartService{store: store, catalog: catalog, log: log}
}

// StartSession ensures the member has a cart. Idempotent: a repeat login
// keeps whatever is already in the cart.
func (s *CartService) StartSession(ctx context.Context, memberID int64) error {
	if err := s.store.StartSession(ctx, memberID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// ListProducts returns the catalog. The listing is gated on an active
// session like every other shop page.
func (s *CartService) ListProducts(ctx context.Context, memberID int64) ([]domain.Product, error) {
	if err := s.requireSession(ctx, memberID); err != nil {
		return nil, err
	}
	return s.catalog.Products(), nil
}

// AddItem adds one unit of the product and returns the refreshed cart view.
// The product id is not checked against the catalog here; stale or unknown
// ids are dropped when the cart is priced.
func (s *CartService) AddItem(ctx context.Context, memberID int64, productID int) (*ports.CartView, error) {
	if err := s.requireSession(ctx, memberID); err != nil {
		return nil, err
	}
	if err := s.store.IncrementItem(ctx, memberID, productID); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.log.Debug().Int64("member_id", memberID).Int("product_id", productID).Msg("item added to cart")
	return s.view(ctx, memberID)
}

// UpdateQuantities applies the submitted quantity fields one by one. An
// entry that does not parse as a non-negative integer is skipped, zero
// removes the product, anything else replaces the stored quantity.
// Products without a submitted field are left untouched.
func (s *CartService) UpdateQuantities(ctx context.Context, memberID int64, updates []ports.QuantityUpdate) (*ports.CartView, error) {
	if err := s.requireSession(ctx, memberID); err != nil {
		return nil, err
	}

	for _, u := range updates {
		qty, ok := domain.ParseQuantity(u.Quantity)
		if !ok {
			s.log.Debug().
				Int64("member_id", memberID).
				Int("product_id", u.ProductID).
				Str("raw", u.Quantity).
				Msg("ignoring invalid quantity")
			continue
		}
		if qty == 0 {
			if err := s.store.RemoveItem(ctx, memberID, u.ProductID); err != nil {
				return nil, fmt.Errorf("update quantities: %w", err)
			}
			continue
		}
		if err := s.store.SetQuantity(ctx, memberID, u.ProductID, qty); err != nil {
			return nil, fmt.Errorf("update quantities: %w", err)
		}
	}

	return s.view(ctx, memberID)
}

// ViewCart returns the priced cart.
func (s *CartService) ViewCart(ctx context.Context, memberID int64) (*ports.CartView, error) {
	if err := s.requireSession(ctx, memberID); err != nil {
		return nil, err
	}
	return s.view(ctx, memberID)
}

// Checkout returns the checkout summary. It runs the same pricing as
// ViewCart so the two views always agree on the total.
func (s *CartService) Checkout(ctx context.Context, memberID int64) (*ports.CartView, error) {
	view, err := s.ViewCart(ctx, memberID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("member_id", memberID).Int("total", view.Total).Int("items", len(view.Items)).Msg("checkout summary")
	return view, nil
}

func (s *CartService) requireSession(ctx context.Context, memberID int64) error {
	ok, err := s.store.HasSession(ctx, memberID)
	if err != nil {
		return fmt.Errorf("session check: %w", err)
	}
	if !ok {
		return domain.ErrNoSession
	}
	return nil
}

func (s *CartService) view(ctx context.Context, memberID int64) (*ports.CartView, error) {
	cart, err := s.store.Get(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	items, total := cart.Price(s.catalog)
	return &ports.CartView{Items: items, Total: total}, nil
}
