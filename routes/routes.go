package routes

import (
	"net/http"
	"time"

	"streamify/handlers"
	"streamify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSignupRoutes registers the signup wizard endpoints. All of them
// are public: the wizard runs before an account exists.
func RegisterSignupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/signup")
	{
		api.POST("", hb.StartSignupHandler)
		api.GET("/:draftId/steps/:step", hb.GetSignupStepHandler)
		api.PUT("/:draftId/password", hb.SetPasswordHandler)
		api.PUT("/:draftId/plan", hb.SelectPlanHandler)
		api.PUT("/:draftId/payment-method", hb.SelectPaymentMethodHandler)
		api.POST("/:draftId/payment/card", hb.SubmitCardHandler)
		api.POST("/:draftId/payment/upi", hb.SubmitUpiHandler)
		api.GET("/:draftId/success", hb.SignupSuccessHandler)
		api.DELETE("/:draftId/success", hb.AcknowledgeSuccessHandler)
	}
}

// RegisterAuthRoutes registers login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterPlanRoutes registers the public plan catalog.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/plans", hb.ListPlansHandler)
}

// RegisterCatalogRoutes registers the browse surface. Reads are public; the
// client gates browsing on login, not the API.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/home", hb.HomeFeedHandler)
		api.GET("/featured", hb.FeaturedMovieHandler)
		api.GET("/movies/:id", hb.MovieDetailHandler)
		api.GET("/search", hb.SearchMoviesHandler)
	}
}

// RegisterAccountRoutes registers the authenticated account and profile
// endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/account", hb.GetAccountHandler)

		api.GET("/profiles", hb.ListProfilesHandler)
		api.GET("/profiles/:profileId", hb.GetProfileHandler)
		api.PUT("/profiles/:profileId", hb.UpdateProfileHandler)
		api.POST("/profiles/:profileId/select", hb.SelectProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Streamify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSignupRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterHealthRoute(r)
}
