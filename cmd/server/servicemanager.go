package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodandhunger/backend/internal/donation"
	"github.com/foodandhunger/backend/internal/donor"
	"github.com/foodandhunger/backend/internal/feedback"
	"github.com/foodandhunger/backend/internal/recipient"
	"github.com/foodandhunger/backend/internal/system/database/provider"
	"github.com/foodandhunger/backend/internal/system/log"
)

// healthChecker is satisfied by *database.DB.
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// registerServices registers every resource module and the health endpoint on the router.
func registerServices(router *gin.Engine, dbClient provider.DBClientInterface, db healthChecker) {
	logger := log.GetLogger()

	_ = donation.Initialize(router, dbClient)
	logger.Info("Donation module initialized")

	_ = donor.Initialize(router, dbClient)
	logger.Info("Donor module initialized")

	_ = recipient.Initialize(router, dbClient)
	logger.Info("Recipient module initialized")

	_ = feedback.Initialize(router, dbClient)
	logger.Info("Feedback module initialized")

	router.GET("/health", healthHandler(db))
}

func healthHandler(db healthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			log.FromContext(c.Request.Context(), log.WithComponent("Health")).WithError(err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
