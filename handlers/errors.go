package handlers

import (
	"errors"
	"net/http"

	"pawcare/services/booking"
	"pawcare/services/provider"
	"pawcare/services/schedule"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var (
		validationErr schedule.ValidationError
		formatErr     schedule.FormatError
		transitionErr schedule.TransitionError
		locationErr   provider.LocationError
		ownershipErr  provider.OwnershipError
		slotTakenErr  booking.SlotTakenError
		dateErr       booking.UnknownDateError
		notProvider   booking.NotProviderError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &formatErr),
		errors.As(err, &locationErr), errors.As(err, &dateErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &slotTakenErr), errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &ownershipErr), errors.As(err, &notProvider):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error("Failed to "+action, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// providerFromContext returns the authenticated provider ID set by
// JWTAuthProviderMiddleware.
func providerFromContext(c *gin.Context) (string, bool) {
	providerIDValue, exists := c.Get("providerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return "", false
	}
	providerID, ok := providerIDValue.(string)
	if !ok || providerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid provider ID in context"})
		return "", false
	}
	return providerID, true
}
