package user

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/pkg/apperror"
)

// CredentialAuthority verifies a user's credentials.
// A nil user with a nil error means the credentials matched no account.
type CredentialAuthority interface {
	AuthenticateUser(ctx context.Context, email, password string) (*User, error)
}

// Service defines business logic related to users.
type Service interface {
	CredentialAuthority
	GetByID(ctx context.Context, id int) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrCredentialsMissing
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(u.PasswordHash, password)
	if err != nil {
		log.Warn().Err(err).Int("user_id", u.ID).Msg("stored password hash is unusable")
		return nil, apperror.Wrap(err, apperror.KindInternal, "credential check failed")
	}
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
