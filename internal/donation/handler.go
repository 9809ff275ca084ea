package donation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/donation/model"
	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/log"
	"github.com/foodandhunger/backend/internal/system/utils"
)

// donationHandler handles HTTP requests for donations
type donationHandler struct {
	service DonationServiceInterface
	logger  *logrus.Entry
}

// newDonationHandler creates a new donation handler
func newDonationHandler(service DonationServiceInterface) *donationHandler {
	return &donationHandler{
		service: service,
		logger:  log.WithComponent("DonationHandler"),
	}
}

func (h *donationHandler) entry(c *gin.Context, operation string) {
	log.FromContext(c.Request.Context(), h.logger).WithField("operation", operation).Info("Handling donation request")
}

// handleCreate handles POST /donation/add
func (h *donationHandler) handleCreate(c *gin.Context) {
	h.entry(c, "create")

	var request model.Donation
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	if _, serviceErr := h.service.CreateDonation(c.Request.Context(), &request); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Donation added successfully")
}

// handleGet handles GET /donation/{id}
func (h *donationHandler) handleGet(c *gin.Context) {
	h.entry(c, "get")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	donation, serviceErr := h.service.GetDonation(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donation)
}

// handleGetAll handles GET /donation/all
func (h *donationHandler) handleGetAll(c *gin.Context) {
	h.entry(c, "getAll")

	donations, serviceErr := h.service.GetAllDonations(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donations)
}

// handleUpdate handles PUT /donation/update/{id}
func (h *donationHandler) handleUpdate(c *gin.Context) {
	h.entry(c, "update")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var request model.Donation
	if err := utils.BindJSON(c, &request); err != nil {
		utils.SendError(c, err)
		return
	}

	updated, serviceErr := h.service.UpdateDonation(c.Request.Context(), id, &request)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDelete handles DELETE /donation/delete/{id}
func (h *donationHandler) handleDelete(c *gin.Context) {
	h.entry(c, "delete")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	if serviceErr := h.service.DeleteDonation(c.Request.Context(), id); serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.String(http.StatusOK, "Donation deleted successfully")
}

// handleSearch handles GET /donation/search?query=
func (h *donationHandler) handleSearch(c *gin.Context) {
	h.entry(c, "search")

	query, err := utils.RequiredQuery(c, constants.SearchQueryParam)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	donations, serviceErr := h.service.SearchDonations(c.Request.Context(), query)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, donations)
}

// handleCount handles GET /donation/count
func (h *donationHandler) handleCount(c *gin.Context) {
	h.entry(c, "count")

	count, serviceErr := h.service.CountDonations(c.Request.Context())
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, count)
}

// handleExists handles GET /donation/exists/{id}
func (h *donationHandler) handleExists(c *gin.Context) {
	h.entry(c, "exists")

	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	exists, serviceErr := h.service.DonationExists(c.Request.Context(), id)
	if serviceErr != nil {
		utils.SendError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, exists)
}
