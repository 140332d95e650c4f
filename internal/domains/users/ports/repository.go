package ports

import (
	"context"
	"errors"

	"github.com/gopetstore/petstore/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username/password supplied")

// Repository owns the user collection, keyed by an explicit username. The
// key is supplied by the caller and is not re-derived from the value, so a
// replace can legitimately store a value whose own username differs.
type Repository interface {
	Save(ctx context.Context, key string, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
