package domain

import (
	"errors"
	"strings"
)

// Status represents the lifecycle state of a pet inside the store catalog.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// Category groups pets in the catalog.
type Category struct {
	ID   int64
	Name string
}

// Tag is a lightweight marker attached to pets for filtering.
type Tag struct {
	ID   int64
	Name string
}

// Pet represents the aggregate managed by the pets bounded context.
type Pet struct {
	ID        int64
	Category  *Category
	Name      string
	PhotoURLs []string
	Tags      []Tag
	Status    Status
}

var (
	ErrEmptyName     = errors.New("pet name is required")
	ErrEmptyPhotos   = errors.New("at least one photo url is required")
	ErrInvalidStatus = errors.New("pet status is invalid")
	ErrMissingID     = errors.New("pet id is required")
)

// ParseStatus validates a raw status string. The empty string is accepted
// and means the pet has no lifecycle state yet.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	switch status {
	case "", StatusAvailable, StatusPending, StatusSold:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// NewPet validates the invariants and builds a new Pet aggregate.
func NewPet(id int64, name string, photoURLs []string) (*Pet, error) {
	p := &Pet{ID: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.ReplacePhotos(photoURLs); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the pet name ensuring the invariant.
func (p *Pet) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// ReplacePhotos ensures at least one photo is stored.
func (p *Pet) ReplacePhotos(urls []string) error {
	if len(urls) == 0 {
		return ErrEmptyPhotos
	}
	p.PhotoURLs = append([]string{}, urls...)
	return nil
}

// UpdateStatus accepts only known lifecycle values.
func (p *Pet) UpdateStatus(status Status) error {
	parsed, err := ParseStatus(string(status))
	if err != nil {
		return err
	}
	p.Status = parsed
	return nil
}

// ReplaceTags swaps the current tag set.
func (p *Pet) ReplaceTags(tags []Tag) {
	p.Tags = append([]Tag{}, tags...)
}

// UpdateCategory sets a new category pointer.
func (p *Pet) UpdateCategory(cat *Category) {
	if cat == nil {
		p.Category = nil
		return
	}
	copied := *cat
	p.Category = &copied
}

// HasAnyTag reports whether the pet carries at least one tag whose name
// exactly matches one of the requested names. Pets without tags never match.
func (p *Pet) HasAnyTag(names []string) bool {
	for _, tag := range p.Tags {
		for _, name := range names {
			if tag.Name == name {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy so stored state never aliases caller memory.
func (p *Pet) Clone() *Pet {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Category != nil {
		category := *p.Category
		clone.Category = &category
	}
	if len(p.PhotoURLs) > 0 {
		clone.PhotoURLs = append([]string{}, p.PhotoURLs...)
	}
	if len(p.Tags) > 0 {
		clone.Tags = append([]Tag{}, p.Tags...)
	}
	return &clone
}
