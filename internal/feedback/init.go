package feedback

import (
	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/database/provider"
)

// Initialize sets up the feedback module and registers routes
func Initialize(router gin.IRouter, dbClient provider.DBClientInterface) FeedbackServiceInterface {
	store := newFeedbackStore(dbClient)
	service := newFeedbackService(store)
	handler := newFeedbackHandler(service)

	registerRoutes(router, handler)

	return service
}

// registerRoutes registers all feedback HTTP routes under /api/feedback
func registerRoutes(router gin.IRouter, handler *feedbackHandler) {
	group := router.Group(constants.APIBasePath + "/feedback")

	group.POST("/add", handler.handleCreate)
	group.GET("/all", handler.handleGetAll)
	group.GET("/search", handler.handleSearch)
	group.GET("/count", handler.handleCount)
	group.GET("/exists/:"+constants.IDPathParam, handler.handleExists)
	group.PUT("/update/:"+constants.IDPathParam, handler.handleUpdate)
	group.DELETE("/delete/:"+constants.IDPathParam, handler.handleDelete)
	group.GET("/:"+constants.IDPathParam, handler.handleGet)
}
