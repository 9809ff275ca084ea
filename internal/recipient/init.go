package recipient

import (
	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/database/provider"
)

// Initialize sets up the recipient module and registers routes
func Initialize(router gin.IRouter, dbClient provider.DBClientInterface) RecipientServiceInterface {
	store := newRecipientStore(dbClient)
	service := newRecipientService(store)
	handler := newRecipientHandler(service)

	registerRoutes(router, handler)

	return service
}

// registerRoutes registers all recipient HTTP routes under /api/recipient
func registerRoutes(router gin.IRouter, handler *recipientHandler) {
	group := router.Group(constants.APIBasePath + "/recipient")

	group.POST("/add", handler.handleCreate)
	group.GET("/all", handler.handleGetAll)
	group.GET("/search", handler.handleSearch)
	group.GET("/count", handler.handleCount)
	group.GET("/exists/:"+constants.IDPathParam, handler.handleExists)
	group.PUT("/update/:"+constants.IDPathParam, handler.handleUpdate)
	group.DELETE("/delete/:"+constants.IDPathParam, handler.handleDelete)
	group.GET("/:"+constants.IDPathParam, handler.handleGet)
}
