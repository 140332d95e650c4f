package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gopetstore/petstore/internal/domains/users/domain"
	"github.com/gopetstore/petstore/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory user collection, keyed by username.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

// Save stores the user under the supplied key, overwriting any previous
// entry. The key is not re-derived from the value.
func (r *Repository) Save(_ context.Context, key string, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if key == "" {
		return nil, errors.New("key is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[key]; !ok {
		r.order = append(r.order, key)
	}
	r.users[key] = user.Clone()
	return user.Clone(), nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return user.Clone(), nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(r.users, username)
	for i, key := range r.order {
		if key == username {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.users))
	for _, key := range r.order {
		list = append(list, r.users[key].Clone())
	}
	return list, nil
}
