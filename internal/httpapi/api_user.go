package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userhttpmapper "github.com/gopetstore/petstore/internal/domains/users/adapters/http/mapper"
	userapp "github.com/gopetstore/petstore/internal/domains/users/application"
	userports "github.com/gopetstore/petstore/internal/domains/users/ports"
	apierrors "github.com/gopetstore/petstore/internal/shared/errors"
)

// UserAPI wires HTTP transport with the users bounded context service.
type UserAPI struct {
	service userports.Service
}

// NewUserAPI creates a UserAPI backed by the provided service.
func NewUserAPI(service userports.Service) UserAPI {
	return UserAPI{service: service}
}

// Post /v2/user
// Create user
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	if err := api.service.CreateUser(c.Request.Context(), userhttpmapper.ToDomain(payload)); err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "User created successfully"})
}

// Post /v2/user/createWithArray
// Creates list of users with given input array
func (api *UserAPI) CreateUsersWithArrayInput(c *gin.Context) {
	api.createUsersBulk(c)
}

// Post /v2/user/createWithList
// Creates list of users with given input array
func (api *UserAPI) CreateUsersWithListInput(c *gin.Context) {
	api.createUsersBulk(c)
}

// createUsersBulk is the single behavior behind both bulk entry points.
func (api *UserAPI) createUsersBulk(c *gin.Context) {
	var payload []userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	if err := api.service.CreateUsers(c.Request.Context(), userhttpmapper.ToDomainList(payload)); err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "Users created successfully"})
}

// Get /v2/user/:username
// Get user by user name
func (api *UserAPI) GetUserByName(c *gin.Context) {
	username := c.Param("username")
	user, err := api.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomain(user))
}

// Put /v2/user/:username
// Updated user
func (api *UserAPI) UpdateUser(c *gin.Context) {
	username := c.Param("username")
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	if _, err := api.service.Update(c.Request.Context(), username, userhttpmapper.ToDomain(payload)); err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "User updated successfully"})
}

// Delete /v2/user/:username
// Delete user
func (api *UserAPI) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := api.service.Delete(c.Request.Context(), username); err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "User deleted successfully"})
}

// Get /v2/user/login
// Logs user into the system
func (api *UserAPI) LoginUser(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")
	token, err := api.service.Login(c.Request.Context(), username, password)
	if err != nil {
		respondUserServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// Get /v2/user/logout
// Logs out current logged in user session
func (api *UserAPI) LogoutUser(c *gin.Context) {
	api.service.Logout(c.Request.Context())
	c.JSON(http.StatusOK, Acknowledgment{Message: "User logged out successfully"})
}

func respondUserServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, userports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, userapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
