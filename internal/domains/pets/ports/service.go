package ports

import (
	"context"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
)

// UploadImageInput carries the metadata of an uploaded asset. The content
// itself is never inspected or stored.
type UploadImageInput struct {
	ID       int64
	Filename string
	Metadata string
}

// UploadImageResult describes the acknowledgment returned by the upload flow.
type UploadImageResult struct {
	Code    int32
	Type    string
	Message string
}

// Service defines the pets use cases exposed to adapters (inbound/driving port).
type Service interface {
	AddPet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	UpdatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	UpdatePetWithForm(ctx context.Context, id int64, name, status string) error
	FindByStatus(ctx context.Context, statuses []string) ([]*domain.Pet, error)
	FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	Delete(ctx context.Context, id int64, apiKey string) error
	UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageResult, error)
	List(ctx context.Context) ([]*domain.Pet, error)
}
