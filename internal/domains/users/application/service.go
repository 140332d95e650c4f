package application

import (
	"context"
	"errors"

	"github.com/gopetstore/petstore/internal/domains/users/domain"
	"github.com/gopetstore/petstore/internal/domains/users/ports"
)

// The login check is a fixed credential pair with an opaque token literal,
// not a lookup against the stored user collection. Part of the legacy
// contract; see the tests pinning it.
const (
	loginUsername = "user1"
	loginPassword = "password"
	sessionToken  = "logged_in_session_token"
)

// Service exposes user bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser stores the user under its username. A user without a username
// is silently skipped; the operation still succeeds.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	if !user.HasUsername() {
		return nil
	}
	_, err := s.repo.Save(ctx, user.Username, user)
	return err
}

// CreateUsers applies CreateUser to each element in sequence order. Each
// element independently stores or is skipped; the operation as a whole
// never fails for valid input.
func (s *Service) CreateUsers(ctx context.Context, users []*domain.User) error {
	for _, user := range users {
		if user == nil {
			continue
		}
		if err := s.CreateUser(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Update overwrites the entry stored under the original key with the full
// input value. The key is deliberately not re-derived from the payload, so
// the stored key can desynchronize from the value's own username field.
func (s *Service) Update(ctx context.Context, username string, updated *domain.User) (*domain.User, error) {
	if updated == nil {
		return nil, errors.New("user is nil")
	}
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, username, updated)
}

func (s *Service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

// Login succeeds only for the fixed credential pair and returns the opaque
// session token literal.
func (s *Service) Login(_ context.Context, username, password string) (string, error) {
	if username == loginUsername && password == loginPassword {
		return sessionToken, nil
	}
	return "", mapError(ports.ErrInvalidCredentials)
}

// Logout always succeeds; no session state is tracked anywhere.
func (s *Service) Logout(_ context.Context) {}

var _ ports.Service = (*Service)(nil)
