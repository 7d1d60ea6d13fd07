package ports

import (
	"context"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// MemberRepository defines the interface for member persistence.
type MemberRepository interface {
	// Create inserts the member and returns its generated id.
	Create(ctx context.Context, member *domain.Member) (int64, error)
	// FindByIdentity returns a member matching the username OR the email.
	FindByIdentity(ctx context.Context, username, email string) (*domain.Member, error)
	// FindByCredentials returns the member matching the exact (email, password) pair.
	FindByCredentials(ctx context.Context, email, password string) (*domain.Member, error)
}
