package ports

import (
	"context"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

// RegisterInput carries the registration form fields. Phone and Birthdate
// are optional.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Phone     string
	Birthdate string
}

type MemberService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Member, error)
	// Login returns a signed token and the authenticated member.
	Login(ctx context.Context, email, password string) (string, *domain.Member, error)
}
