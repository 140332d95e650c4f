package ports

import (
	"context"
	"errors"

	"github.com/gopetstore/petstore/internal/domains/store/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository owns the order collection and the fixed inventory view.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
	Inventory(ctx context.Context) (map[string]int32, error)
}
