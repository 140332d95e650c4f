package domain

import (
	"errors"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusApproved  Status = "approved"
	StatusDelivered Status = "delivered"
)

var (
	ErrInvalidPetID    = errors.New("pet id must be greater than zero")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrInvalidID       = errors.New("invalid id")
)

// Order models the store purchase order aggregate. PetID is a plain value
// reference; it is never checked against the pet collection.
type Order struct {
	ID       int64
	PetID    int64
	Quantity int32
	ShipDate time.Time
	Status   Status
	Complete bool
}

// ParseStatus validates a raw status string. The empty string is accepted
// and leaves the order without a progression state.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	switch status {
	case "", StatusPlaced, StatusApproved, StatusDelivered:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Validate enforces the placement invariants on the aggregate.
func (o *Order) Validate() error {
	if o.PetID <= 0 {
		return ErrInvalidPetID
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if _, err := ParseStatus(string(o.Status)); err != nil {
		return err
	}
	return nil
}
