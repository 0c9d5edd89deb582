package routes

import (
	adminapi "restriction-app/internal/api/admin"
	authapi "restriction-app/internal/api/auth"
	"restriction-app/internal/api/billing"
	contentapi "restriction-app/internal/api/content"
	"restriction-app/internal/api/decide"
	menusapi "restriction-app/internal/api/menus"
	plansapi "restriction-app/internal/api/plans"
	rolesapi "restriction-app/internal/api/roles"
	settingsapi "restriction-app/internal/api/settings"
	stripewebhooks "restriction-app/internal/api/stripewebhook"
	"restriction-app/internal/api/users"
	"restriction-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeJSONInput())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/plans", plansapi.ListRolePlans)
	public.GET("/roles", rolesapi.ListRoles)

	// Content delivery: anonymous visitors are a valid identity, so the
	// token is optional and the guard decides per page.
	delivery := r.Group("/")
	delivery.Use(middleware.OptionalAuthMiddleware())
	delivery.GET("/pages/:slug", middleware.RestrictionGuard(), contentapi.GetPage)
	delivery.GET("/menus/:slug", menusapi.GetMenu)

	// Bare policy-decision endpoints for external embedders.
	pdp := r.Group("/decide")
	pdp.Use(middleware.OptionalAuthMiddleware())
	pdp.POST("", decide.Decide)
	pdp.POST("/key", decide.DecideKey)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("administrator"))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.PUT("/user/:id/roles", adminapi.SetUserRoles)
	admin.PUT("/user/:id/bypass", adminapi.SetUserBypass)

	admin.GET("/pages", contentapi.ListPages)
	admin.POST("/pages", contentapi.CreatePage)
	admin.PUT("/pages/:id", contentapi.UpdatePage)
	admin.DELETE("/pages/:id", contentapi.DeletePage)
	admin.POST("/pages/:id/blocks", contentapi.CreateBlock)
	admin.PUT("/blocks/:id", contentapi.UpdateBlock)
	admin.DELETE("/blocks/:id", contentapi.DeleteBlock)

	admin.GET("/menus", menusapi.ListMenus)
	admin.POST("/menus", menusapi.CreateMenu)
	admin.POST("/menus/:id/items", menusapi.CreateItem)
	admin.PUT("/menu-items/:id", menusapi.UpdateItem)
	admin.DELETE("/menu-items/:id", menusapi.DeleteItem)
	admin.GET("/menus/:id/mismatches", menusapi.GetMismatches)

	admin.GET("/settings", settingsapi.GetSettings)
	admin.PUT("/settings", settingsapi.UpdateSettings)

	admin.POST("/plans", plansapi.CreateRolePlan)
}
