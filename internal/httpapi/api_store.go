package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/gopetstore/petstore/internal/domains/store/adapters/http/mapper"
	storeapp "github.com/gopetstore/petstore/internal/domains/store/application"
	storeports "github.com/gopetstore/petstore/internal/domains/store/ports"
	apierrors "github.com/gopetstore/petstore/internal/shared/errors"
)

// StoreAPI wires HTTP transport with the store bounded context service.
type StoreAPI struct {
	service storeports.Service
}

// NewStoreAPI creates a StoreAPI backed by the provided service.
func NewStoreAPI(service storeports.Service) StoreAPI {
	return StoreAPI{service: service}
}

// Get /v2/store/inventory
// Returns pet inventories by status
func (api *StoreAPI) GetInventory(c *gin.Context) {
	inventory, err := api.service.Inventory(c.Request.Context())
	if err != nil {
		respondStoreServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// Post /v2/store/order
// Place an order for a pet
func (api *StoreAPI) PlaceOrder(c *gin.Context) {
	var payload orderhttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.service.PlaceOrder(c.Request.Context(), orderhttpmapper.ToDomain(payload))
	if err != nil {
		respondStoreServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomain(saved))
}

// Get /v2/store/order/:orderId
// Find purchase order by ID
func (api *StoreAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondStoreServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomain(order))
}

// Delete /v2/store/order/:orderId
// Delete purchase order by ID
func (api *StoreAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondStoreServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Acknowledgment{Message: "Order deleted successfully"})
}

func respondStoreServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, storeports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, storeapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
