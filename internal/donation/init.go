package donation

import (
	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/database/provider"
)

// Initialize sets up the donation module and registers routes
func Initialize(router gin.IRouter, dbClient provider.DBClientInterface) DonationServiceInterface {
	store := newDonationStore(dbClient)
	service := newDonationService(store)
	handler := newDonationHandler(service)

	registerRoutes(router, handler)

	return service
}

// registerRoutes registers all donation HTTP routes under /api/donation
func registerRoutes(router gin.IRouter, handler *donationHandler) {
	group := router.Group(constants.APIBasePath + "/donation")

	group.POST("/add", handler.handleCreate)
	group.GET("/all", handler.handleGetAll)
	group.GET("/search", handler.handleSearch)
	group.GET("/count", handler.handleCount)
	group.GET("/exists/:"+constants.IDPathParam, handler.handleExists)
	group.PUT("/update/:"+constants.IDPathParam, handler.handleUpdate)
	group.DELETE("/delete/:"+constants.IDPathParam, handler.handleDelete)
	group.GET("/:"+constants.IDPathParam, handler.handleGet)
}
