// Package mapper translates between the pet HTTP payloads and the domain.
package mapper

import (
	"github.com/gopetstore/petstore/internal/domains/pets/domain"
)

// Category is the HTTP representation of a pet category.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Tag is the HTTP representation of a pet tag.
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Pet is the HTTP representation used for create, replace, and read flows.
type Pet struct {
	ID        int64     `json:"id,omitempty"`
	Category  *Category `json:"category,omitempty"`
	Name      string    `json:"name"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    string    `json:"status,omitempty"`
}

// ToDomain builds the domain aggregate from the transport payload without
// validating; validation is the application layer's job.
func ToDomain(payload Pet) *domain.Pet {
	pet := &domain.Pet{
		ID:        payload.ID,
		Name:      payload.Name,
		PhotoURLs: payload.PhotoURLs,
		Status:    domain.Status(payload.Status),
	}
	if payload.Category != nil {
		pet.Category = &domain.Category{ID: payload.Category.ID, Name: payload.Category.Name}
	}
	for _, tag := range payload.Tags {
		pet.Tags = append(pet.Tags, domain.Tag{ID: tag.ID, Name: tag.Name})
	}
	return pet
}

// FromDomain renders a stored pet for transport.
func FromDomain(pet *domain.Pet) Pet {
	if pet == nil {
		return Pet{}
	}
	result := Pet{
		ID:        pet.ID,
		Name:      pet.Name,
		PhotoURLs: pet.PhotoURLs,
		Status:    string(pet.Status),
	}
	if pet.Category != nil {
		result.Category = &Category{ID: pet.Category.ID, Name: pet.Category.Name}
	}
	for _, tag := range pet.Tags {
		result.Tags = append(result.Tags, Tag{ID: tag.ID, Name: tag.Name})
	}
	return result
}

// FromDomainList renders a pet collection for transport.
func FromDomainList(pets []*domain.Pet) []Pet {
	result := make([]Pet, 0, len(pets))
	for _, pet := range pets {
		result = append(result, FromDomain(pet))
	}
	return result
}
