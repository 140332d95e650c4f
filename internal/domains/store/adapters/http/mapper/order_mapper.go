// Package mapper translates between the order HTTP payloads and the domain.
package mapper

import (
	"time"

	"github.com/gopetstore/petstore/internal/domains/store/domain"
)

// Order is the HTTP representation of a purchase order.
type Order struct {
	ID       int64      `json:"id,omitempty"`
	PetID    int64      `json:"petId,omitempty"`
	Quantity int32      `json:"quantity,omitempty"`
	ShipDate *time.Time `json:"shipDate,omitempty"`
	Status   string     `json:"status,omitempty"`
	Complete bool       `json:"complete"`
}

// ToDomain builds the domain aggregate from the transport payload.
func ToDomain(payload Order) *domain.Order {
	order := &domain.Order{
		ID:       payload.ID,
		PetID:    payload.PetID,
		Quantity: payload.Quantity,
		Status:   domain.Status(payload.Status),
		Complete: payload.Complete,
	}
	if payload.ShipDate != nil {
		order.ShipDate = *payload.ShipDate
	}
	return order
}

// FromDomain renders a stored order for transport.
func FromDomain(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	result := Order{
		ID:       order.ID,
		PetID:    order.PetID,
		Quantity: order.Quantity,
		Status:   string(order.Status),
		Complete: order.Complete,
	}
	if !order.ShipDate.IsZero() {
		shipDate := order.ShipDate
		result.ShipDate = &shipDate
	}
	return result
}
