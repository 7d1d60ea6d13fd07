package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// RedisCartStore keeps one hash per member (field = product id, value =
// quantity) plus a session marker key. Both carry the configured TTL, which
// is the store's invalidation policy: the clock restarts on login and on
// every cart operation, so only an idle session expires. All cart operations
// require the marker and return domain.ErrNoSession once it is gone.
//
// Key format: session:<member_id> and cart:<member_id>.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a RedisCartStore. A ttl of zero disables expiry.
func NewCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) StartSession(ctx context.Context, memberID int64) error {
	// Always (re)set the marker so a fresh login restarts the TTL clock.
	// The cart hash itself is left alone: logging in twice keeps the cart.
	if err := s.client.Set(ctx, s.sessionKey(memberID), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return s.touch(ctx, memberID)
}

func (s *RedisCartStore) HasSession(ctx context.Context, memberID int64) (bool, error) {
	n, err := s.client.Exists(ctx, s.sessionKey(memberID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *RedisCartStore) Get(ctx context.Context, memberID int64) (domain.Cart, error) {
	if err := s.requireSession(ctx, memberID); err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, s.cartKey(memberID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart := make(domain.Cart, len(fields))
	for field, value := range fields {
		productID, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(value)
		if err != nil || qty < 1 {
			continue
		}
		cart[productID] = qty
	}
	return cart, nil
}

func (s *RedisCartStore) IncrementItem(ctx context.Context, memberID int64, productID int) error {
	if err := s.requireSession(ctx, memberID); err != nil {
		return err
	}
	if err := s.client.HIncrBy(ctx, s.cartKey(memberID), strconv.Itoa(productID), 1).Err(); err != nil {
		return fmt.Errorf("increment item: %w", err)
	}
	return s.touch(ctx, memberID)
}

func (s *RedisCartStore) SetQuantity(ctx context.Context, memberID int64, productID, quantity int) error {
	if err := s.requireSession(ctx, memberID); err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.cartKey(memberID), strconv.Itoa(productID), quantity).Err(); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return s.touch(ctx, memberID)
}

func (s *RedisCartStore) RemoveItem(ctx context.Context, memberID int64, productID int) error {
	if err := s.requireSession(ctx, memberID); err != nil {
		return err
	}
	if err := s.client.HDel(ctx, s.cartKey(memberID), strconv.Itoa(productID)).Err(); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return s.touch(ctx, memberID)
}

func (s *RedisCartStore) requireSession(ctx context.Context, memberID int64) error {
	ok, err := s.HasSession(ctx, memberID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoSession
	}
	return nil
}

// touch restarts the idle clock on both keys after cart activity.
func (s *RedisCartStore) touch(ctx context.Context, memberID int64) error {
	if s.ttl <= 0 {
		return nil
	}
	if err := s.client.Expire(ctx, s.sessionKey(memberID), s.ttl).Err(); err != nil {
		return fmt.Errorf("refresh session ttl: %w", err)
	}
	if err := s.client.Expire(ctx, s.cartKey(memberID), s.ttl).Err(); err != nil {
		return fmt.Errorf("refresh cart ttl: %w", err)
	}
	return nil
}

func (s *RedisCartStore) sessionKey(memberID int64) string {
	return fmt.Sprintf("session:%d", memberID)
}

func (s *RedisCartStore) cartKey(memberID int64) string {
	return fmt.Sprintf("cart:%d", memberID)
}
