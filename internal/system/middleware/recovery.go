package middleware

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
	"github.com/foodandhunger/backend/internal/system/utils"
)

// Recovery turns a handler panic into a 500 response carrying the standard error envelope.
func Recovery() gin.HandlerFunc {
	logger := log.WithComponent("HTTP")
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.FromContext(c.Request.Context(), logger).
			WithField("panic", recovered).
			WithField("path", c.Request.URL.Path).
			Error("Recovered from panic")
		utils.SendError(c, &serviceerror.InternalServerError)
	})
}
