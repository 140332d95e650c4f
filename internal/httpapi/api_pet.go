package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/gopetstore/petstore/internal/domains/pets/adapters/http/mapper"
	petsapp "github.com/gopetstore/petstore/internal/domains/pets/application"
	petsports "github.com/gopetstore/petstore/internal/domains/pets/ports"
	apierrors "github.com/gopetstore/petstore/internal/shared/errors"
)

// PetAPI wires HTTP transport with the pets bounded context service.
type PetAPI struct {
	service petsports.Service
}

// NewPetAPI creates a PetAPI backed by the provided service.
func NewPetAPI(service petsports.Service) PetAPI {
	return PetAPI{service: service}
}

// Post /v2/pet
// Add a new pet to the store
func (api *PetAPI) AddPet(c *gin.Context) {
	var payload pethttpmapper.Pet
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.service.AddPet(c.Request.Context(), pethttpmapper.ToDomain(payload))
	if err != nil {
		// The legacy contract reports create-time validation with a 405.
		if errors.Is(err, petsapp.ErrInvalidInput) {
			respondProblem(c, apierrors.ErrInvalidInput.WithDetail(err.Error()))
			return
		}
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(saved))
}

// Put /v2/pet
// Update an existing pet
func (api *PetAPI) UpdatePet(c *gin.Context) {
	var payload pethttpmapper.Pet
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	updated, err := api.service.UpdatePet(c.Request.Context(), pethttpmapper.ToDomain(payload))
	if err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(updated))
}

// Get /v2/pet/findByStatus
// Finds Pets by status
func (api *PetAPI) FindPetsByStatus(c *gin.Context) {
	statuses := c.QueryArray("status")
	result, err := api.service.FindByStatus(c.Request.Context(), statuses)
	if err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainList(result))
}

// Get /v2/pet/findByTags
// Finds Pets by tags
// Deprecated
func (api *PetAPI) FindPetsByTags(c *gin.Context) {
	tags := c.QueryArray("tags")
	result, err := api.service.FindByTags(c.Request.Context(), tags)
	if err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainList(result))
}

// Get /v2/pet/:petId
// Find pet by ID
func (api *PetAPI) GetPetById(c *gin.Context) {
	id, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	pet, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(pet))
}

// Post /v2/pet/:petId
// Updates a pet in the store with form data
func (api *PetAPI) UpdatePetWithForm(c *gin.Context) {
	id, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	name := c.PostForm("name")
	status := c.PostForm("status")
	if err := api.service.UpdatePetWithForm(c.Request.Context(), id, name, status); err != nil {
		// Missing pet is reported as invalid input here, not as not found.
		if errors.Is(err, petsapp.ErrInvalidInput) {
			respondProblem(c, apierrors.ErrInvalidInput.WithDetail(err.Error()))
			return
		}
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "Pet updated successfully"})
}

// Delete /v2/pet/:petId
// Deletes a pet
func (api *PetAPI) DeletePet(c *gin.Context) {
	id, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	apiKey := c.GetHeader("api_key")
	if err := api.service.Delete(c.Request.Context(), id, apiKey); err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "Pet deleted successfully"})
}

// Post /v2/pet/:petId/uploadImage
// uploads an image
func (api *PetAPI) UploadFile(c *gin.Context) {
	id, ok := parseIDParam(c, "petId")
	if !ok {
		return
	}
	input := petsports.UploadImageInput{ID: id, Metadata: c.PostForm("additionalMetadata")}
	if file, err := c.FormFile("file"); err == nil {
		input.Filename = file.Filename
	}
	result, err := api.service.UploadImage(c.Request.Context(), input)
	if err != nil {
		respondPetServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Code: result.Code, Type: result.Type, Message: result.Message})
}

func respondPetServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, petsports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, petsapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
