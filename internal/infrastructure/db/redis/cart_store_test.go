package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

const testMemberID int64 = 7

func newTestStore(t *testing.T, ttl time.Duration) (*RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCartStore(client, ttl), mr
}

func TestRedisCartStore_SessionLifecycle(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	ok, err := store.HasSession(ctx, testMemberID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("no session expected before login")
	}

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("start session: %v", err)
	}
	ok, err = store.HasSession(ctx, testMemberID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("session expected after login")
	}
}

func TestRedisCartStore_NoSession(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if _, err := store.Get(ctx, testMemberID); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("Get: expected ErrNoSession, got %v", err)
	}
	if err := store.IncrementItem(ctx, testMemberID, 1); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("IncrementItem: expected ErrNoSession, got %v", err)
	}
	if err := store.SetQuantity(ctx, testMemberID, 1, 3); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("SetQuantity: expected ErrNoSession, got %v", err)
	}
	if err := store.RemoveItem(ctx, testMemberID, 1); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("RemoveItem: expected ErrNoSession, got %v", err)
	}
}

func TestRedisCartStore_Mutations(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("start session: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementItem(ctx, testMemberID, 1); err != nil {
			t.Fatalf("increment item: %v", err)
		}
	}
	if err := store.SetQuantity(ctx, testMemberID, 2, 5); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := store.IncrementItem(ctx, testMemberID, 3); err != nil {
		t.Fatalf("increment item: %v", err)
	}
	if err := store.RemoveItem(ctx, testMemberID, 3); err != nil {
		t.Fatalf("remove item: %v", err)
	}

	cart, err := store.Get(ctx, testMemberID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	want := domain.Cart{1: 3, 2: 5}
	if len(cart) != len(want) || cart[1] != want[1] || cart[2] != want[2] {
		t.Fatalf("expected %v, got %v", want, cart)
	}
}

func TestRedisCartStore_StartSessionKeepsCart(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if err := store.IncrementItem(ctx, testMemberID, 2); err != nil {
		t.Fatalf("increment item: %v", err)
	}

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("repeat start session: %v", err)
	}

	cart, err := store.Get(ctx, testMemberID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart[2] != 1 {
		t.Fatalf("cart lost on repeat login: %v", cart)
	}
}

func TestRedisCartStore_ActivityExtendsSession(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("start session: %v", err)
	}

	// Cart activity 40 minutes in must restart the idle clock on the
	// session marker, not just on the cart hash.
	mr.FastForward(40 * time.Minute)
	if err := store.IncrementItem(ctx, testMemberID, 1); err != nil {
		t.Fatalf("increment item: %v", err)
	}

	mr.FastForward(40 * time.Minute)
	ok, err := store.HasSession(ctx, testMemberID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("session expired despite recent activity")
	}

	cart, err := store.Get(ctx, testMemberID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart[1] != 1 {
		t.Fatalf("cart expired despite recent activity: %v", cart)
	}
}

func TestRedisCartStore_IdleSessionExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.StartSession(ctx, testMemberID); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if err := store.IncrementItem(ctx, testMemberID, 1); err != nil {
		t.Fatalf("increment item: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	ok, err := store.HasSession(ctx, testMemberID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("idle session must expire")
	}
	if _, err := store.Get(ctx, testMemberID); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after expiry, got %v", err)
	}
}
