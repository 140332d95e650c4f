package application

import (
	"errors"
	"fmt"

	"github.com/gopetstore/petstore/internal/domains/users/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid user input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrInvalidCredentials) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
