package handlers

import (
	"net/http"
	"strconv"

	"pawcare/models"
	"pawcare/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes service CRUD and availability management.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// CreateServiceHandler registers a new service offering for the
// authenticated provider.
func (h *ProviderHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		logger.Error("Invalid service creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateService(c.Request.Context(), providerID, svc)
	if err != nil {
		respondServiceError(c, logger, "create service", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetServiceHandler returns a single service by ID.
func (h *ProviderHandler) GetServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	svc, err := h.Service.GetService(c.Request.Context(), serviceID)
	if err != nil {
		respondServiceError(c, logger, "get service", err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListServicesHandler returns all services owned by the authenticated
// provider.
func (h *ProviderHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	services, err := h.Service.ListServices(c.Request.Context(), providerID)
	if err != nil {
		respondServiceError(c, logger, "list services", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// DeleteServiceHandler removes a service owned by the authenticated
// provider.
func (h *ProviderHandler) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	if err := h.Service.DeleteService(c.Request.Context(), providerID, serviceID); err != nil {
		respondServiceError(c, logger, "delete service", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// AddAvailabilityHandler generates slots for the requested days and appends
// them to the service's weekly availability.
func (h *ProviderHandler) AddAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	var req models.AddAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	svc, err := h.Service.AddAvailability(c.Request.Context(), providerID, serviceID, req)
	if err != nil {
		respondServiceError(c, logger, "add availability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability added",
		"availability": svc.Availability,
	})
}

// DeleteSlotHandler removes a single slot. The slot is addressed either by
// its ID (path param) or, for older clients, by day name plus the slot's
// position in the flattened day listing.
func (h *ProviderHandler) DeleteSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	if slotID := c.Param("slotID"); slotID != "" {
		svc, err := h.Service.DeleteSlotByID(c.Request.Context(), providerID, serviceID, slotID)
		if err != nil {
			respondServiceError(c, logger, "delete slot", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slot deleted", "availability": svc.Availability})
		return
	}

	day := c.Query("day")
	indexStr := c.Query("index")
	if day == "" || indexStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing day or index query parameter"})
		return
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot index"})
		return
	}

	svc, err := h.Service.DeleteSlotAt(c.Request.Context(), providerID, serviceID, day, index)
	if err != nil {
		respondServiceError(c, logger, "delete slot", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted", "availability": svc.Availability})
}

// DayScheduleHandler returns the per-weekday schedule with contiguous slots
// merged into display blocks.
func (h *ProviderHandler) DayScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	schedule, err := h.Service.DaySchedule(c.Request.Context(), serviceID)
	if err != nil {
		respondServiceError(c, logger, "get day schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
