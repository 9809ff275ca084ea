package donor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/donor/model"
	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/log"
	"github.com/foodandhunger/backend/internal/system/utils"
)

// donorHandler handles HTTP requests for donors
type donorHandler struct {
	service DonorServiceInterface
	logger  *logrus.Entry
}

// newDonorHandler creates a new donor handler
func newDonorHandler(service DonorServiceInterface) *donorHandler {
	return &donorHandler{
		service: service,
		logger:  log.WithComponent("DonorHandler"),
	}
}

func (h *donorHandler) entry(c *gin.Context, operation string) {
	log.FromContext(c.Request.Context(), h.logger).WithField("operation", operation).Info("Handling donor request")
}

// handleCreate handles POST /donor/add
func (h *donorHandler) handleCreate(c *gin.Context) {
	h.entry(c, "create")

	var request model.Donor
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	if _, serviceErr := h.service.CreateDonor(c.Request.Context(), &request); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Donor added successfully")
}

// handleGet handles GET /donor/{id}
func (h *donorHandler) handleGet(c *gin.Context) {
	h.entry(c, "get")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	donor, serviceErr := h.service.GetDonor(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donor)
}

// handleGetAll handles GET /donor/all
func (h *donorHandler) handleGetAll(c *gin.Context) {
	h.entry(c, "getAll")

	donors, serviceErr := h.service.GetAllDonors(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donors)
}

// handleUpdate handles PUT /donor/update/{id}
func (h *donorHandler) handleUpdate(c *gin.Context) {
	h.entry(c, "update")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var request model.Donor
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	updated, serviceErr := h.service.UpdateDonor(c.Request.Context(), id, &request)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDelete handles DELETE /donor/delete/{id}
func (h *donorHandler) handleDelete(c *gin.Context) {
	h.entry(c, "delete")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	if serviceErr := h.service.DeleteDonor(c.Request.Context(), id); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Donor deleted successfully")
}

// handleSearch handles GET /donor/search?query=
func (h *donorHandler) handleSearch(c *gin.Context) {
	h.entry(c, "search")

	query, err := utils.RequiredQuery(c, constants.SearchQueryParam)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	donors, serviceErr := h.service.SearchDonors(c.Request.Context(), query)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donors)
}

// handleCount handles GET /donor/count
func (h *donorHandler) handleCount(c *gin.Context) {
	h.entry(c, "count")

	count, serviceErr := h.service.CountDonors(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, count)
}

// handleExists handles GET /donor/exists/{id}
func (h *donorHandler) handleExists(c *gin.Context) {
	h.entry(c, "exists")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	exists, serviceErr := h.service.DonorExists(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, exists)
}
