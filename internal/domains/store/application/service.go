package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/gopetstore/petstore/internal/domains/store/domain"
	"github.com/gopetstore/petstore/internal/domains/store/ports"
)

// Order ids accepted by lookups. The upper bound is part of the legacy
// contract and is independent of the ids actually stored.
const (
	minLookupOrderID = 1
	maxLookupOrderID = 10
)

// Service orchestrates store/order use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// PlaceOrder validates and stores a new order. The order id is always
// freshly allocated; petId is never checked against the pet collection.
func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	candidate := *order
	candidate.ID = 0
	if err := candidate.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, &candidate)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetOrderByID rejects ids outside [1, 10] before consulting the store.
func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	if id < minLookupOrderID || id > maxLookupOrderID {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidID)
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order; ids below 1 are invalid input.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if id < minLookupOrderID {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidID)
	}
	return s.repo.Delete(ctx, id)
}

// Inventory returns the fixed status-to-count mapping verbatim. It is never
// computed from the live pet or order collections.
func (s *Service) Inventory(ctx context.Context) (map[string]int32, error) {
	return s.repo.Inventory(ctx)
}

var _ ports.Service = (*Service)(nil)
