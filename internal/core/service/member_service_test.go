package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
)

type stubMemberRepo struct {
	members []*domain.Member
	nextID  int64
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{}
}

func (r *stubMemberRepo) Create(_ context.Context, member *domain.Member) (int64, error) {
	for _, m := range r.members {
		if m.Username == member.Username || m.Email == member.Email {
			return 0, domain.ErrMemberExists
		}
	}
	r.nextID++
	clone := *member
	clone.ID = r.nextID
	r.members = append(r.members, &clone)
	return clone.ID, nil
}

func (r *stubMemberRepo) FindByIdentity(_ context.Context, username, email string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.Username == username || m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) FindByCredentials(_ context.Context, email, password string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.Email == email && m.Password == password {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func newMemberService(repo ports.MemberRepository) *MemberService {
	return NewMemberService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestMemberService_Register_Success(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	member, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:  "ann",
		Email:     "ann@x.com",
		Password:  "secret",
		Phone:     "555-0101",
		Birthdate: "1990-04-01",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if member.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if member.Username != "ann" || member.Email != "ann@x.com" {
		t.Fatalf("unexpected member: %+v", member)
	}
}

func TestMemberService_Register_MissingFields(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	cases := []ports.RegisterInput{
		{Username: "", Email: "a@x.com", Password: "p"},
		{Username: "a", Email: "", Password: "p"},
		{Username: "a", Email: "a@x.com", Password: ""},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); err != domain.ErrMissingFields {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", in, err)
		}
	}
	if len(repo.members) != 0 {
		t.Fatalf("no member must be persisted on validation failure, got %d", len(repo.members))
	}
}

func TestMemberService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "ann", Email: "ann@x.com", Password: "p"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "other", Email: "ann@x.com", Password: "p"})
	if err != domain.ErrMemberExists {
		t.Fatalf("expected ErrMemberExists, got %v", err)
	}
	if len(repo.members) != 1 {
		t.Fatalf("duplicate register must not persist a row, got %d", len(repo.members))
	}
}

func TestMemberService_Login_Success(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "ann", Email: "ann@x.com", Password: "secret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, member, err := svc.Login(context.Background(), "ann@x.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if member == nil || member.Username != "ann" {
		t.Fatalf("unexpected member: %+v", member)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "ann" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
	if id, ok := claims["member_id"].(float64); !ok || int64(id) != member.ID {
		t.Fatalf("expected member_id claim %d, got %v", member.ID, claims["member_id"])
	}
}

func TestMemberService_Login_WrongPassword(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "ann", Email: "ann@x.com", Password: "secret"})
	if _, _, err := svc.Login(context.Background(), "ann@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestMemberService_Login_MissingCredentials(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	if _, _, err := svc.Login(context.Background(), "", "secret"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ann@x.com", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestMemberService_Login_UnknownEmail(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo)

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
