package api

import (
	"context"
	"time"

	petsdomain "github.com/gopetstore/petstore/internal/domains/pets/domain"
	petsports "github.com/gopetstore/petstore/internal/domains/pets/ports"
	storedomain "github.com/gopetstore/petstore/internal/domains/store/domain"
	storeports "github.com/gopetstore/petstore/internal/domains/store/ports"
	usersdomain "github.com/gopetstore/petstore/internal/domains/users/domain"
	usersports "github.com/gopetstore/petstore/internal/domains/users/ports"
)

// Seed populates the collections with one sample instance per resource type.
// It runs once at process start; a fresh instance always serves this
// baseline. The order's ship date is captured at seeding time.
func Seed(ctx context.Context, pets petsports.Repository, orders storeports.Repository, users usersports.Repository, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	pet := &petsdomain.Pet{
		ID:        1,
		Name:      "Buddy",
		PhotoURLs: []string{"http://example.com/photo1.jpg"},
		Status:    petsdomain.StatusAvailable,
		Category:  &petsdomain.Category{ID: 1, Name: "Dogs"},
		Tags:      []petsdomain.Tag{{ID: 1, Name: "friendly"}},
	}
	if _, err := pets.Save(ctx, pet); err != nil {
		return err
	}

	user := &usersdomain.User{
		ID:        1,
		Username:  "user1",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password",
		Phone:     "123-456-7890",
		Status:    1,
	}
	if _, err := users.Save(ctx, user.Username, user); err != nil {
		return err
	}

	order := &storedomain.Order{
		ID:       1,
		PetID:    1,
		Quantity: 1,
		ShipDate: now(),
		Status:   storedomain.StatusPlaced,
		Complete: false,
	}
	if _, err := orders.Save(ctx, order); err != nil {
		return err
	}
	return nil
}
