package routes

import (
	"rideadmin/internal/handlers"
	"rideadmin/internal/middleware"
	"rideadmin/internal/services"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Captain   *handlers.CaptainHandler
	Booking   *handlers.BookingHandler
	Financial *handlers.FinancialHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

// SetupRouter wires middleware and every route group onto a fresh engine.
// allowBootstrap leaves admin creation open; production deployments close
// it once the first account exists.
func SetupRouter(h *Handlers, authService *services.AuthService, log *logger.Logger, allowBootstrap bool) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")

	registerAdminRoutes(api, h, authService, allowBootstrap)

	// The live feed authenticates inside the handler so browser clients can
	// pass the token as a query parameter.
	api.GET("/bookings/live/ws", h.Booking.LiveBookingsFeed)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	registerUserRoutes(protected, h)
	registerCaptainRoutes(protected, h)
	registerBookingRoutes(protected, h)
	registerFinancialRoutes(protected, h)
	registerDashboardRoutes(protected, h)

	return router
}

func registerAdminRoutes(api *gin.RouterGroup, h *Handlers, authService *services.AuthService, allowBootstrap bool) {
	admin := api.Group("/admin")
	admin.POST("/login", h.Auth.Login)

	if allowBootstrap {
		admin.POST("/create", h.Auth.CreateAdmin)
	} else {
		admin.POST("/create", middleware.AuthMiddleware(authService), h.Auth.CreateAdmin)
	}

	admin.POST("/logout", middleware.AuthMiddleware(authService), h.Auth.Logout)
	admin.GET("/profile", middleware.AuthMiddleware(authService), h.Auth.Profile)
}

func registerUserRoutes(api *gin.RouterGroup, h *Handlers) {
	users := api.Group("/users")
	users.GET("", h.User.ListUsers)
	users.GET("/stats", h.User.GetUserStats)
	users.GET("/:id", h.User.GetUser)
	users.GET("/:id/bookings", h.User.ListUserBookings)
	users.PUT("/:id/status", h.User.UpdateUserStatus)
}

func registerCaptainRoutes(api *gin.RouterGroup, h *Handlers) {
	captains := api.Group("/captains")
	captains.GET("", h.Captain.ListCaptains)
	captains.GET("/pending/count", h.Captain.PendingCount)
	captains.GET("/:id", h.Captain.GetCaptain)
	captains.POST("/:id/approve", h.Captain.ApproveCaptain)
	captains.POST("/:id/reject", h.Captain.RejectCaptain)
	captains.PUT("/:id/status", h.Captain.UpdateCaptainStatus)
	captains.GET("/:id/rates", h.Captain.ListRates)
	captains.PUT("/:id/rates", h.Captain.SetRate)
}

func registerBookingRoutes(api *gin.RouterGroup, h *Handlers) {
	bookings := api.Group("/bookings")
	bookings.GET("", h.Booking.ListBookings)
	bookings.GET("/stats", h.Booking.GetBookingStats)
	bookings.GET("/live", h.Booking.ListActiveBookings)
	bookings.GET("/:id", h.Booking.GetBooking)
	bookings.PUT("/:id/status", h.Booking.UpdateBookingStatus)
	bookings.POST("/:id/resolve", h.Booking.ResolveDispute)
}

func registerFinancialRoutes(api *gin.RouterGroup, h *Handlers) {
	financials := api.Group("/financials")
	financials.GET("/overview", h.Financial.GetOverview)
	financials.GET("/transactions", h.Financial.ListTransactions)
	financials.GET("/commissions", h.Financial.ListCommissions)
	financials.GET("/daily-revenue", h.Financial.GetDailyRevenue)
	financials.GET("/export", h.Financial.Export)
}

func registerDashboardRoutes(api *gin.RouterGroup, h *Handlers) {
	dashboard := api.Group("/dashboard")
	dashboard.GET("/overview", h.Dashboard.GetOverview)
	dashboard.GET("/recent-activity", h.Dashboard.GetRecentActivity)

	charts := dashboard.Group("/charts")
	charts.GET("/bookings-trend", h.Dashboard.GetBookingsTrend)
	charts.GET("/revenue-trend", h.Dashboard.GetRevenueTrend)
	charts.GET("/service-distribution", h.Dashboard.GetServiceDistribution)
}
