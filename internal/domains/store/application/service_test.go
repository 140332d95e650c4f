package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	storememory "github.com/gopetstore/petstore/internal/domains/store/adapters/memory"
	"github.com/gopetstore/petstore/internal/domains/store/domain"
	"github.com/gopetstore/petstore/internal/domains/store/ports"
)

func newStoreService(t *testing.T) *Service {
	t.Helper()
	return NewService(storememory.NewRepository())
}

func validOrder() *domain.Order {
	return &domain.Order{
		PetID:    7,
		Quantity: 2,
		ShipDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:   domain.StatusPlaced,
	}
}

func TestPlaceOrder_AllocatesID(t *testing.T) {
	svc := newStoreService(t)

	order := validOrder()
	order.ID = 99
	saved, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)
	// Client-supplied ids are ignored.
	require.Equal(t, int64(1), saved.ID)

	second, err := svc.PlaceOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)
}

func TestPlaceOrder_Validation(t *testing.T) {
	svc := newStoreService(t)

	order := validOrder()
	order.PetID = 0
	_, err := svc.PlaceOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidPetID)

	order = validOrder()
	order.Quantity = 0
	_, err = svc.PlaceOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	order = validOrder()
	order.Status = "shipped"
	_, err = svc.PlaceOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGetOrderByID_BoundsPrecedeLookup(t *testing.T) {
	svc := newStoreService(t)

	saved, err := svc.PlaceOrder(context.Background(), validOrder())
	require.NoError(t, err)

	fetched, err := svc.GetOrderByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved, fetched)

	// Out-of-range ids are rejected before consulting the store, so 0 and 11
	// fail identically whether or not such an order could exist.
	for _, id := range []int64{0, -3, 11, 99} {
		_, err := svc.GetOrderByID(context.Background(), id)
		require.ErrorIs(t, err, ErrInvalidInput, "id %d", id)
		require.ErrorIs(t, err, domain.ErrInvalidID, "id %d", id)
	}

	// An in-range id with no order is a plain not-found.
	_, err = svc.GetOrderByID(context.Background(), 10)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	svc := newStoreService(t)

	saved, err := svc.PlaceOrder(context.Background(), validOrder())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), saved.ID))
	require.ErrorIs(t, svc.DeleteOrder(context.Background(), saved.ID), ports.ErrNotFound)

	err = svc.DeleteOrder(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Unlike lookups, deletes have no upper bound on the id.
	require.ErrorIs(t, svc.DeleteOrder(context.Background(), 42), ports.ErrNotFound)
}

func TestInventory_FixedCounts(t *testing.T) {
	svc := newStoreService(t)

	inventory, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int32{"available": 5, "pending": 3, "sold": 2}, inventory)

	// Placing orders never changes the reported counts.
	_, err = svc.PlaceOrder(context.Background(), validOrder())
	require.NoError(t, err)

	inventory, err = svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int32{"available": 5, "pending": 3, "sold": 2}, inventory)
}
