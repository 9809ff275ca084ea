package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/feedback/model"
	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/log"
	"github.com/foodandhunger/backend/internal/system/utils"
)

// feedbackHandler handles HTTP requests for feedback
type feedbackHandler struct {
	service FeedbackServiceInterface
	logger  *logrus.Entry
}

// newFeedbackHandler creates a new feedback handler
func newFeedbackHandler(service FeedbackServiceInterface) *feedbackHandler {
	return &feedbackHandler{
		service: service,
		logger:  log.WithComponent("FeedbackHandler"),
	}
}

func (h *feedbackHandler) entry(c *gin.Context, operation string) {
	log.FromContext(c.Request.Context(), h.logger).WithField("operation", operation).Info("Handling feedback request")
}

// handleCreate handles POST /feedback/add
func (h *feedbackHandler) handleCreate(c *gin.Context) {
	h.entry(c, "create")

	var request model.Feedback
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	if _, serviceErr := h.service.CreateFeedback(c.Request.Context(), &request); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Feedback added successfully")
}

// handleGet handles GET /feedback/{id}
func (h *feedbackHandler) handleGet(c *gin.Context) {
	h.entry(c, "get")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	feedback, serviceErr := h.service.GetFeedback(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// handleGetAll handles GET /feedback/all
func (h *feedbackHandler) handleGetAll(c *gin.Context) {
	h.entry(c, "getAll")

	entries, serviceErr := h.service.GetAllFeedback(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// handleUpdate handles PUT /feedback/update/{id}
func (h *feedbackHandler) handleUpdate(c *gin.Context) {
	h.entry(c, "update")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var request model.Feedback
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	updated, serviceErr := h.service.UpdateFeedback(c.Request.Context(), id, &request)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDelete handles DELETE /feedback/delete/{id}
func (h *feedbackHandler) handleDelete(c *gin.Context) {
	h.entry(c, "delete")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	if serviceErr := h.service.DeleteFeedback(c.Request.Context(), id); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Feedback deleted successfully")
}

// handleSearch handles GET /feedback/search?query=
func (h *feedbackHandler) handleSearch(c *gin.Context) {
	h.entry(c, "search")

	query, err := utils.RequiredQuery(c, constants.SearchQueryParam)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	entries, serviceErr := h.service.SearchFeedback(c.Request.Context(), query)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// handleCount handles GET /feedback/count
func (h *feedbackHandler) handleCount(c *gin.Context) {
	h.entry(c, "count")

	count, serviceErr := h.service.CountFeedback(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, count)
}

// handleExists handles GET /feedback/exists/{id}
func (h *feedbackHandler) handleExists(c *gin.Context) {
	h.entry(c, "exists")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	exists, serviceErr := h.service.FeedbackExists(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, exists)
}
