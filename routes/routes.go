package routes

import (
	"net/http"
	"time"

	"pawcare/handlers"
	"pawcare/middleware"
	"pawcare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers service CRUD and availability management
// endpoints. Reads are public; mutations require a provider token.
func RegisterServiceRoutes(r *gin.Engine, ph *handlers.ProviderHandler) {
	api := r.Group("/api/services")
	{
		// Public read endpoints.
		api.GET("/:id", ph.GetServiceHandler)
		api.GET("/:id/schedule", ph.DayScheduleHandler)

		// Mutations require provider authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.GET("", ph.ListServicesHandler)
		protected.POST("", ph.CreateServiceHandler)
		protected.DELETE("/:id", ph.DeleteServiceHandler)
		protected.POST("/:id/availability", ph.AddAvailabilityHandler)
		protected.DELETE("/:id/slots", ph.DeleteSlotHandler)
		protected.DELETE("/:id/slots/:slotID", ph.DeleteSlotHandler)
	}
}

// RegisterBookingRoutes registers the client booking flow and the provider
// appointment lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/services/:id/slots", bh.FreeSlotsHandler)
		bookingGroup.GET("/services/:id/next", bh.NextAvailabilityHandler)
		bookingGroup.POST("/book", bh.BookSlotHandler)
		bookingGroup.POST("/confirm/:appointmentID", bh.ConfirmBookingHandler)
		bookingGroup.GET("/clients/:clientID/appointments", bh.ClientAppointmentsHandler)

		// Appointment lifecycle is driven by the provider.
		protected := bookingGroup.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.GET("/appointments", bh.ProviderAppointmentsHandler)
		protected.PUT("/appointments/:appointmentID/start", bh.StartAppointmentHandler)
		protected.PUT("/appointments/:appointmentID/complete", bh.CompleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ph *handlers.ProviderHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterServiceRoutes(r, ph)
	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}
