// Package memory provides the in-process cart store: one cart per member,
// living for the lifetime of the process. This is the reference behavior —
// no expiry, no logout, carts vanish on restart.
package memory

import (
	"context"
	"sync"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// CartStore is a mutex-guarded map from member id to cart. The lock makes
// each operation atomic; interleavings between operations (two tabs racing
// an add against an update) remain possible and are accepted.
type CartStore struct {
	mu    sync.RWMutex
	carts map[int64]domain.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int64]domain.Cart)}
}

func (s *CartStore) StartSession(_ context.Context, memberID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[memberID]; !ok {
		s.carts[memberID] = make(domain.Cart)
	}
	return nil
}

func (s *CartStore) HasSession(_ context.Context, memberID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.carts[memberID]
	return ok, nil
}

// Get returns a snapshot copy so callers can price it without holding the lock.
func (s *CartStore) Get(_ context.Context, memberID int64) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[memberID]
	if !ok {
		return nil, domain.ErrNoSession
	}

	snapshot := make(domain.Cart, len(cart))
	for productID, qty := range cart {
		snapshot[productID] = qty
	}
	return snapshot, nil
}

func (s *CartStore) IncrementItem(_ context.Context, memberID int64, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[memberID]
	if !ok {
		return domain.ErrNoSession
	}
	cart[productID]++
	return nil
}

func (s *CartStore) SetQuantity(_ context.Context, memberID int64, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[memberID]
	if !ok {
		return domain.ErrNoSession
	}
	cart[productID] = quantity
	return nil
}

func (s *CartStore) RemoveItem(_ context.Context, memberID int64, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[memberID]
	if !ok {
		return domain.ErrNoSession
	}
	delete(cart, productID)
	return nil
}
