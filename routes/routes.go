package routes

import (
	"net/http"
	"strings"
	"time"

	"therewecome/handlers"
	"therewecome/middleware"
	"therewecome/models"
	"therewecome/services/guard"
	"therewecome/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterViewRoutes registers the home resolution and the public views.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.GET("/login", middleware.PublicOnly(models.ViewLogin), hb.LoginPageHandler)
	r.GET("/register", middleware.PublicOnly(models.ViewRegister), hb.RegisterPageHandler)
}

// RegisterSessionRoutes registers login, registration and logout.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/login", hb.LoginHandler)
	r.POST("/register", hb.RegisterHandler)
	r.POST("/logout", hb.LogoutHandler)
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/book")
	{
		bookingGroup.GET("", hb.WizardHandler)
		bookingGroup.POST("/fields", hb.UpdateFieldsHandler)
		bookingGroup.POST("/search", hb.SearchHandler)
		bookingGroup.POST("/select", hb.SelectStylistHandler)
		bookingGroup.POST("/submit", hb.SubmitHandler)
		bookingGroup.POST("/next", hb.NextHandler)
		bookingGroup.POST("/back", hb.BackHandler)
		bookingGroup.POST("/reset", hb.ResetHandler)
		bookingGroup.POST("/bookings", hb.RetrieveBookingsHandler)
		bookingGroup.DELETE("/bookings", hb.CloseBookingsHandler)
		bookingGroup.DELETE("/notification", hb.DismissNotificationHandler)
	}
}

// RegisterStylistRoutes sets up the stylist dashboard behind the stylist guard.
func RegisterStylistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sh := hb.StylistHandler
	dashboard := r.Group("/dashboard")
	{
		dashboard.Use(middleware.RequireRole(guard.StylistRule, models.ViewDashboard))
		dashboard.GET("", sh.DashboardHandler)
		dashboard.GET("/bookings", sh.BookingsHandler)
		dashboard.PUT("/bookings/:id/approve", sh.ApproveHandler)
		dashboard.PUT("/bookings/:id/reject", sh.RejectHandler)
		dashboard.GET("/profile", sh.ProfileHandler)
		dashboard.PUT("/profile", sh.UpdateProfileHandler)
		dashboard.POST("/profile/locations", sh.AddLocationHandler)
		dashboard.DELETE("/profile/locations/:value", sh.RemoveLocationHandler)
		dashboard.POST("/profile/services", sh.AddServiceHandler)
		dashboard.DELETE("/profile/services/:value", sh.RemoveServiceHandler)
	}
}

// RegisterAdminRoutes sets up the admin console behind the admin guard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	ah := hb.AdminHandler
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.RequireRole(guard.AdminRule, models.ViewAdmin))
		adminGroup.GET("", ah.AdminDashboardHandler)
		adminGroup.GET("/users", ah.GetAllUsersHandler)
		adminGroup.GET("/metrics", ah.GetMetricsHandler)
		adminGroup.GET("/statistics.csv", ah.ExportStatisticsHandler)
		adminGroup.POST("/invite", ah.InviteHandler)
	}
}

// RegisterHealthRoute reports the last dependency check.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm ThereWeCome"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins string) {
	allowAll := origins == "" || origins == "*"
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r)
	RegisterViewRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStylistRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
