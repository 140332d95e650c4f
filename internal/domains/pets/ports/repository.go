package ports

import (
	"context"
	"errors"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
)

var ErrNotFound = errors.New("pet not found")

// Repository owns the pet collection. Save allocates a fresh id when the
// pet carries none; filters iterate in insertion order.
type Repository interface {
	Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	Delete(ctx context.Context, id int64) error
	FindByStatus(ctx context.Context, statuses []domain.Status) ([]*domain.Pet, error)
	FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error)
	List(ctx context.Context) ([]*domain.Pet, error)
}
