package recipient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/recipient/model"
	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/log"
	"github.com/foodandhunger/backend/internal/system/utils"
)

// recipientHandler handles HTTP requests for recipients
type recipientHandler struct {
	service RecipientServiceInterface
	logger  *logrus.Entry
}

// newRecipientHandler creates a new recipient handler
func newRecipientHandler(service RecipientServiceInterface) *recipientHandler {
	return &recipientHandler{
		service: service,
		logger:  log.WithComponent("RecipientHandler"),
	}
}

func (h *recipientHandler) entry(c *gin.Context, operation string) {
	log.FromContext(c.Request.Context(), h.logger).WithField("operation", operation).Info("Handling recipient request")
}

// handleCreate handles POST /recipient/add
func (h *recipientHandler) handleCreate(c *gin.Context) {
	h.entry(c, "create")

	var request model.Recipient
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	if _, serviceErr := h.service.CreateRecipient(c.Request.Context(), &request); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Recipient added successfully")
}

// handleGet handles GET /recipient/{id}
func (h *recipientHandler) handleGet(c *gin.Context) {
	h.entry(c, "get")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	recipient, serviceErr := h.service.GetRecipient(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, recipient)
}

// handleGetAll handles GET /recipient/all
func (h *recipientHandler) handleGetAll(c *gin.Context) {
	h.entry(c, "getAll")

	recipients, serviceErr := h.service.GetAllRecipients(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, recipients)
}

// handleUpdate handles PUT /recipient/update/{id}
func (h *recipientHandler) handleUpdate(c *gin.Context) {
	h.entry(c, "update")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var request model.Recipient
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	updated, serviceErr := h.service.UpdateRecipient(c.Request.Context(), id, &request)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDelete handles DELETE /recipient/delete/{id}
func (h *recipientHandler) handleDelete(c *gin.Context) {
	h.entry(c, "delete")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	if serviceErr := h.service.DeleteRecipient(c.Request.Context(), id); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Recipient deleted successfully")
}

// handleSearch handles GET /recipient/search?query=
func (h *recipientHandler) handleSearch(c *gin.Context) {
	h.entry(c, "search")

	query, err := utils.RequiredQuery(c, constants.SearchQueryParam)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	recipients, serviceErr := h.service.SearchRecipients(c.Request.Context(), query)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, recipients)
}

// handleCount handles GET /recipient/count
func (h *recipientHandler) handleCount(c *gin.Context) {
	h.entry(c, "count")

	count, serviceErr := h.service.CountRecipients(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, count)
}

// handleExists handles GET /recipient/exists/{id}
func (h *recipientHandler) handleExists(c *gin.Context) {
	h.entry(c, "exists")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	exists, serviceErr := h.service.RecipientExists(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, exists)
}
