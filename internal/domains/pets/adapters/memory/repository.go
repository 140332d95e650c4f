package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
	"github.com/gopetstore/petstore/internal/domains/pets/ports"
	"github.com/gopetstore/petstore/internal/shared/identity"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory pet collection. Iteration follows insertion
// order; the order after a delete/re-insert cycle follows the re-insert.
type Repository struct {
	mu    sync.RWMutex
	pets  map[int64]*domain.Pet
	order []int64
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{pets: map[int64]*domain.Pet{}}
}

// Save inserts or replaces a pet. A pet without an id gets the next free
// one, recomputed from the current maximum key.
func (r *Repository) Save(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("cannot save nil pet")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := pet.Clone()
	if clone.ID == 0 {
		clone.ID = identity.NextID(r.pets)
	}
	if _, ok := r.pets[clone.ID]; !ok {
		r.order = append(r.order, clone.ID)
	}
	r.pets[clone.ID] = clone
	return clone.Clone(), nil
}

// GetByID fetches a pet if present.
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return pet.Clone(), nil
}

// Delete removes a pet.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByStatus returns pets with matching status in insertion order.
func (r *Repository) FindByStatus(_ context.Context, statuses []domain.Status) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := map[domain.Status]struct{}{}
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	var list []*domain.Pet
	for _, id := range r.order {
		pet := r.pets[id]
		if pet.Status == "" {
			continue
		}
		if _, ok := set[pet.Status]; ok {
			list = append(list, pet.Clone())
		}
	}
	return list, nil
}

// FindByTags returns pets carrying any of the requested tag names,
// case-sensitive, in insertion order.
func (r *Repository) FindByTags(_ context.Context, tags []string) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(tags) == 0 {
		return nil, nil
	}
	var list []*domain.Pet
	for _, id := range r.order {
		pet := r.pets[id]
		if pet.HasAnyTag(tags) {
			list = append(list, pet.Clone())
		}
	}
	return list, nil
}

// List returns all pets in insertion order.
func (r *Repository) List(_ context.Context) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Pet, 0, len(r.pets))
	for _, id := range r.order {
		list = append(list, r.pets[id].Clone())
	}
	return list, nil
}
