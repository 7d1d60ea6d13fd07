package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
)

// MemberService implements registration and login.
type MemberService struct {
	repo      ports.MemberRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *MemberService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &MemberService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *MemberService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Member, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	// One lookup covering both unique fields gives the friendly conflict
	// message; the unique indexes on the collection close the race between
	// this check and the insert.
	existing, err := s.repo.FindByIdentity(ctx, in.Username, in.Email)
	if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrMemberExists
	}

	member := &domain.Member{
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
		Birthdate: in.Birthdate,
	}

	id, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	member.ID = id

	s.log.Info().Int64("member_id", id).Str("username", member.Username).Msg("member registered")
	return member, nil
}

func (s *MemberService) Login(ctx context.Context, email, password string) (string, *domain.Member, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	member, err := s.repo.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	token, err := s.generateToken(member)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Int64("member_id", member.ID).Str("username", member.Username).Msg("member logged in")
	return token, member, nil
}

func (s *MemberService) generateToken(member *domain.Member) (string, error) {
	claims := jwt.MapClaims{
		"member_id": member.ID,
		"username":  member.Username,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
