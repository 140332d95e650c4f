package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApiHandleFunctions groups the per-resource handler sets the router mounts.
type ApiHandleFunctions struct {
	PetAPI   PetAPI
	StoreAPI StoreAPI
	UserAPI  UserAPI
}

// NewRouter returns a gin engine with all Petstore v2 routes mounted.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	return NewRouterWithGinEngine(router, handlers)
}

// NewRouterWithGinEngine mounts the Petstore v2 routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handlers ApiHandleFunctions) *gin.Engine {
	v2 := router.Group("/v2")

	pet := handlers.PetAPI
	v2.POST("/pet", pet.AddPet)
	v2.PUT("/pet", pet.UpdatePet)
	v2.GET("/pet/findByStatus", pet.FindPetsByStatus)
	v2.GET("/pet/findByTags", pet.FindPetsByTags)
	v2.GET("/pet/:petId", pet.GetPetById)
	v2.POST("/pet/:petId", pet.UpdatePetWithForm)
	v2.DELETE("/pet/:petId", pet.DeletePet)
	v2.POST("/pet/:petId/uploadImage", pet.UploadFile)

	store := handlers.StoreAPI
	v2.GET("/store/inventory", store.GetInventory)
	v2.POST("/store/order", store.PlaceOrder)
	v2.GET("/store/order/:orderId", store.GetOrderById)
	v2.DELETE("/store/order/:orderId", store.DeleteOrder)

	user := handlers.UserAPI
	v2.POST("/user", user.CreateUser)
	v2.POST("/user/createWithArray", user.CreateUsersWithArrayInput)
	v2.POST("/user/createWithList", user.CreateUsersWithListInput)
	v2.GET("/user/login", user.LoginUser)
	v2.GET("/user/logout", user.LogoutUser)
	v2.GET("/user/:username", user.GetUserByName)
	v2.PUT("/user/:username", user.UpdateUser)
	v2.DELETE("/user/:username", user.DeleteUser)

	return router
}

const requestIDHeader = "X-Request-Id"

// RequestID propagates the inbound request id or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
