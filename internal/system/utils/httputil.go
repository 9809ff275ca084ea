package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/constants"
	"github.com/foodandhunger/backend/internal/system/error/apierror"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
)

// StatusCodeFor returns the HTTP status code for a ServiceError.
func StatusCodeFor(err *serviceerror.ServiceError) int {
	if err.Type != serviceerror.ClientErrorType {
		return http.StatusInternalServerError
	}
	if err.Code == serviceerror.ResourceNotFoundError.Code {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// SendError writes a ServiceError as an HTTP response with appropriate status code
func SendError(c *gin.Context, err *serviceerror.ServiceError) {
	body := apierror.NewErrorResponse(err.Error, err.ErrorDescription).
		WithCorrelationID(log.CorrelationIDFromContext(c.Request.Context()))
	c.AbortWithStatusJSON(StatusCodeFor(err), body)
}

// ParseIDParam reads the numeric resource identifier from the request path.
func ParseIDParam(c *gin.Context) (int64, *serviceerror.ServiceError) {
	raw := c.Param(constants.IDPathParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serviceerror.CustomServiceError(
			serviceerror.InvalidRequestError,
			"id must be a positive integer",
		)
	}
	return id, nil
}

// RequiredQuery reads a query parameter that must be present (it may be empty).
func RequiredQuery(c *gin.Context, name string) (string, *serviceerror.ServiceError) {
	value, ok := c.GetQuery(name)
	if !ok {
		return "", serviceerror.CustomServiceError(
			serviceerror.InvalidRequestError,
			name+" query parameter is required",
		)
	}
	return value, nil
}
