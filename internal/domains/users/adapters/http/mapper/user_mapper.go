// Package mapper translates between the user HTTP payloads and the domain.
package mapper

import (
	"github.com/gopetstore/petstore/internal/domains/users/domain"
)

// User is the HTTP representation of a Petstore user.
type User struct {
	ID         int64  `json:"id,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	Phone      string `json:"phone,omitempty"`
	UserStatus int32  `json:"userStatus,omitempty"`
}

// ToDomain builds the domain entity from the transport payload.
func ToDomain(payload User) *domain.User {
	return &domain.User{
		ID:        payload.ID,
		Username:  payload.Username,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		Phone:     payload.Phone,
		Status:    payload.UserStatus,
	}
}

// ToDomainList maps a user payload slice.
func ToDomainList(payloads []User) []*domain.User {
	result := make([]*domain.User, 0, len(payloads))
	for _, payload := range payloads {
		result = append(result, ToDomain(payload))
	}
	return result
}

// FromDomain renders a stored user for transport.
func FromDomain(user *domain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Password:   user.Password,
		Phone:      user.Phone,
		UserStatus: user.Status,
	}
}
