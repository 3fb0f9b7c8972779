package routes

import (
	"time"

	"premierlodge/handlers"
	"premierlodge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Auth          *handlers.AuthHandler
	Resources     *handlers.ResourceHandler
	Bookings      *handlers.BookingHandler
	Payments      *handlers.PaymentHandler
	Notifications *handlers.NotificationHandler
}

// RegisterAuthRoutes registers staff session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)

		api.Use(middleware.StaffAuthMiddleware())
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterResourceRoutes registers the dashboard CRUD endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.StaffAuthMiddleware())

		api.GET("/rooms", hb.Resources.ListRooms)
		api.POST("/rooms", hb.Resources.CreateRoom)
		api.GET("/rooms/:id", hb.Resources.GetRoom)
		api.PUT("/rooms/:id", hb.Resources.UpdateRoom)
		api.DELETE("/rooms/:id", hb.Resources.DeleteRoom)

		api.GET("/laundry", hb.Resources.ListLaundryOrders)
		api.POST("/laundry", hb.Resources.CreateLaundryOrder)
		api.PUT("/laundry/:id", hb.Resources.UpdateLaundryOrder)
		api.DELETE("/laundry/:id", hb.Resources.DeleteLaundryOrder)

		api.GET("/halls", hb.Resources.ListEventHalls)
		api.POST("/halls", hb.Resources.CreateEventHall)
		api.PUT("/halls/:id", hb.Resources.UpdateEventHall)
		api.DELETE("/halls/:id", hb.Resources.DeleteEventHall)

		api.GET("/bookings", hb.Resources.ListBookings)
		api.GET("/guests", hb.Resources.ListGuests)
		api.GET("/guests/:guestID", hb.Resources.GetGuest)
	}
}

// RegisterBookingRoutes registers the booking submission endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.POST("/submit", hb.Bookings.Submit)
	}
}

// RegisterPaymentRoutes registers the payment callback plus the audit view.
// The callback stays public so the provider can reach it without a staff token.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/callback", hb.Payments.Callback)

		api.Use(middleware.StaffAuthMiddleware())
		api.GET("/guest/:guestID", hb.Payments.GuestTransactions)
	}
}

// RegisterNotificationRoutes registers the notice feed endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.GET("", hb.Notifications.Feed)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
