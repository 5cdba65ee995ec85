package routes

import (
	"strings"
	"time"

	"xoadvisor/config"
	"xoadvisor/handlers"
	"xoadvisor/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-up, sign-in and session endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, limit gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", limit, hb.Auth.SignUpHandler)
		authGroup.POST("/signin", limit, hb.Auth.SignInHandler)
		authGroup.GET("/session", hb.Auth.SessionHandler)

		authGroup.POST("/signout", middleware.RequireSignedIn(), hb.Auth.SignOutHandler)
		authGroup.GET("/events", middleware.RequireSignedIn(), hb.Auth.EventsHandler)
	}
}

// RegisterPublicRoutes registers the directory, contact form and navigation.
func RegisterPublicRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, limit gin.HandlerFunc) {
	api.GET("/resources", hb.Directory.ListResourcesHandler)
	api.GET("/resources/categories", hb.Directory.ListCategoriesHandler)
	api.POST("/inquiries", limit, hb.Inquiry.SubmitInquiryHandler)
	api.GET("/site/navigation", handlers.NavigationHandler)
}

// RegisterUserRoutes registers endpoints that need a signed-in identity.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	user := api.Group("")
	user.Use(middleware.RequireSignedIn())
	{
		user.GET("/profile", hb.Profile.GetProfileHandler)
		user.PATCH("/profile", hb.Profile.UpdateProfileHandler)
		user.PUT("/profile/needs", hb.Profile.SaveNeedsHandler)
		user.POST("/profile/needs/:need/toggle", hb.Profile.ToggleNeedHandler)
		user.GET("/inquiries/mine", hb.Inquiry.ListMyInquiriesHandler)
		user.GET("/dashboard", hb.Profile.DashboardHandler)
	}
}

// RegisterAdminRoutes registers the admin console. The gate runs before any
// handler, so non-admins never trigger an admin read.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin())
	{
		adminGroup.GET("/overview", hb.Admin.OverviewHandler)
		adminGroup.GET("/resources", hb.Admin.ListResourcesHandler)
		adminGroup.POST("/resources", hb.Admin.CreateResourceHandler)
		adminGroup.PUT("/resources/:id", hb.Admin.UpdateResourceHandler)
		adminGroup.DELETE("/resources/:id", hb.Admin.DeleteResourceHandler)
		adminGroup.GET("/inquiries", hb.Inquiry.ListAllInquiriesHandler)
		adminGroup.PATCH("/inquiries/:id/status", hb.Inquiry.SetInquiryStatusHandler)
		adminGroup.GET("/profiles", hb.Admin.ListProfilesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

func corsConfig() cors.Config {
	origins := []string{}
	for _, o := range strings.Split(config.AppConfig.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !wildcard,
		MaxAge:           12 * time.Hour,
	}
}

// RegisterRoutes installs the global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig()))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(hb.Sessions))
	limit := middleware.RateLimitMiddleware(hb.RequestsPerMin)

	RegisterAuthRoutes(api, hb, limit)
	RegisterPublicRoutes(api, hb, limit)
	RegisterUserRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
