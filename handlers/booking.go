package handlers

import (
	"net/http"

	"pawcare/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the client-facing booking flow: availability
// queries, slot holds and the appointment lifecycle.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// FreeSlotsHandler returns bookable slots for a service on one date,
// bucketed into morning, afternoon and evening. The date is the display
// label from the booking horizon ("Today", "Jan 4") or an ISO date.
func (h *BookingHandler) FreeSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	serviceID := c.Param("id")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID or date"})
		return
	}

	resp, err := h.Service.FreeSlotsForDate(c.Request.Context(), serviceID, date)
	if err != nil {
		respondServiceError(c, logger, "get free slots", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NextAvailabilityHandler walks the booking horizon forward from the given
// date and returns the first future date with a free slot.
func (h *BookingHandler) NextAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	serviceID := c.Param("id")
	date := c.Query("from")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing service ID in path"})
		return
	}

	next, err := h.Service.NextAvailable(c.Request.Context(), serviceID, date)
	if err != nil {
		respondServiceError(c, logger, "find next availability", err)
		return
	}
	if next == nil {
		c.JSON(http.StatusOK, gin.H{"next": nil, "message": "No availability in the next 30 days"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"next": next})
}

// BookSlotHandler places a payment hold on a free slot and creates a
// pending appointment. The hold expires automatically if not confirmed.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
		ClientID  string `json:"clientId" binding:"required"`
		Date      string `json:"date" binding:"required"`
		SlotID    string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req.ServiceID, req.ClientID, req.Date, req.SlotID)
	if err != nil {
		respondServiceError(c, logger, "book slot", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Slot held pending payment",
		"appointment": appt,
	})
}

// ConfirmBookingHandler finalizes a pending appointment after payment,
// moving both the appointment and its slot to booked.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	appointmentID := c.Param("appointmentID")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.ConfirmBooking(c.Request.Context(), appointmentID)
	if err != nil {
		respondServiceError(c, logger, "confirm booking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed", "appointment": appt})
}

// StartAppointmentHandler moves a booked appointment to in-progress. Only
// the appointment's provider may start it, and only inside the slot window.
func (h *BookingHandler) StartAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	appointmentID := c.Param("appointmentID")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.StartAppointment(c.Request.Context(), providerID, appointmentID)
	if err != nil {
		respondServiceError(c, logger, "start appointment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment started", "appointment": appt})
}

// CompleteAppointmentHandler moves an in-progress appointment to completed.
func (h *BookingHandler) CompleteAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	appointmentID := c.Param("appointmentID")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.CompleteAppointment(c.Request.Context(), providerID, appointmentID)
	if err != nil {
		respondServiceError(c, logger, "complete appointment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment completed", "appointment": appt})
}

// ProviderAppointmentsHandler lists the authenticated provider's active and
// completed appointments.
func (h *BookingHandler) ProviderAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID, ok := providerFromContext(c)
	if !ok {
		return
	}

	appts, err := h.Service.ProviderAppointments(c.Request.Context(), providerID)
	if err != nil {
		respondServiceError(c, logger, "list provider appointments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ClientAppointmentsHandler lists a client's appointments.
func (h *BookingHandler) ClientAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	clientID := c.Param("clientID")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing client ID in path"})
		return
	}

	appts, err := h.Service.ClientAppointments(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, "list client appointments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
