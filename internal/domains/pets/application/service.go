package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
	"github.com/gopetstore/petstore/internal/domains/pets/ports"
)

// Service orchestrates the pets bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// AddPet validates and stores a new pet. The id is always freshly allocated
// by the repository, regardless of any id carried by the input.
func (s *Service) AddPet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	candidate, err := domain.NewPet(0, pet.Name, pet.PhotoURLs)
	if err != nil {
		return nil, mapError(err)
	}
	if err := candidate.UpdateStatus(pet.Status); err != nil {
		return nil, mapError(err)
	}
	candidate.UpdateCategory(pet.Category)
	candidate.ReplaceTags(pet.Tags)
	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdatePet overwrites the entire stored pet with the input value. Unlike
// AddPet, no presence checks apply: a replace may legitimately store an
// empty name or photo list, only the status enum is enforced.
func (s *Service) UpdatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	if pet.ID == 0 {
		return nil, mapError(domain.ErrMissingID)
	}
	if _, err := s.repo.GetByID(ctx, pet.ID); err != nil {
		return nil, mapError(err)
	}
	if _, err := domain.ParseStatus(string(pet.Status)); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, pet)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdatePetWithForm applies only the fields actually supplied, leaving the
// others untouched. A missing pet is reported as invalid input, not as not
// found; the legacy contract pins that behavior.
func (s *Service) UpdatePetWithForm(ctx context.Context, id int64, name, status string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return err
	}
	if strings.TrimSpace(name) != "" {
		if err := existing.Rename(name); err != nil {
			return mapError(err)
		}
	}
	if strings.TrimSpace(status) != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return mapError(err)
		}
		if err := existing.UpdateStatus(parsed); err != nil {
			return mapError(err)
		}
	}
	if _, err := s.repo.Save(ctx, existing); err != nil {
		return mapError(err)
	}
	return nil
}

// FindByStatus returns pets whose status is a member of the requested set.
// Unknown or duplicate statuses are accepted as-is and simply match nothing.
func (s *Service) FindByStatus(ctx context.Context, statuses []string) ([]*domain.Pet, error) {
	requested := make([]domain.Status, 0, len(statuses))
	for _, status := range statuses {
		requested = append(requested, domain.Status(status))
	}
	result, err := s.repo.FindByStatus(ctx, requested)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// FindByTags returns pets having at least one tag whose name exactly matches
// any requested tag.
func (s *Service) FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error) {
	result, err := s.repo.FindByTags(ctx, tags)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// GetByID loads a single pet aggregate.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return pet, nil
}

// Delete removes a pet. The apiKey is accepted for contract compatibility
// and never validated against any credential.
func (s *Service) Delete(ctx context.Context, id int64, _ string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

// UploadImage acknowledges an uploaded asset after checking the target pet
// exists. The content is not retained.
func (s *Service) UploadImage(ctx context.Context, input ports.UploadImageInput) (*ports.UploadImageResult, error) {
	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}
	msg := "Image uploaded successfully"
	if input.Metadata != "" {
		msg = fmt.Sprintf("%s (%s)", msg, input.Metadata)
	}
	return &ports.UploadImageResult{Code: 200, Type: "success", Message: msg}, nil
}

// List exposes all pets for admin use cases.
func (s *Service) List(ctx context.Context) ([]*domain.Pet, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

var _ ports.Service = (*Service)(nil)
