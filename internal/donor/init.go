package donor

import (
	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/database/provider"
)

// Initialize sets up the donor module and registers routes
func Initialize(router gin.IRouter, dbClient provider.DBClientInterface) DonorServiceInterface {
	store := newDonorStore(dbClient)
	service := newDonorService(store)
	handler := newDonorHandler(service)

	registerRoutes(router, handler)

	return service
}

// registerRoutes registers all donor HTTP routes under /api/donor
func registerRoutes(router gin.IRouter, handler *donorHandler) {
	group := router.Group(constants.APIBasePath + "/donor")

	group.POST("/add", handler.handleCreate)
	group.GET("/all", handler.handleGetAll)
	group.GET("/search", handler.handleSearch)
	group.GET("/count", handler.handleCount)
	group.GET("/exists/:"+constants.IDPathParam, handler.handleExists)
	group.PUT("/update/:"+constants.IDPathParam, handler.handleUpdate)
	group.DELETE("/delete/:"+constants.IDPathParam, handler.handleDelete)
	group.GET("/:"+constants.IDPathParam, handler.handleGet)
}
