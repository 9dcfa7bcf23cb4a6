package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so the route
// registrar only ever takes a single dependency.
type HandlerBundle struct {
	// Signup wizard endpoints.
	StartSignupHandler         gin.HandlerFunc
	GetSignupStepHandler       gin.HandlerFunc
	SetPasswordHandler         gin.HandlerFunc
	SelectPlanHandler          gin.HandlerFunc
	SelectPaymentMethodHandler gin.HandlerFunc
	SubmitCardHandler          gin.HandlerFunc
	SubmitUpiHandler           gin.HandlerFunc
	SignupSuccessHandler       gin.HandlerFunc
	AcknowledgeSuccessHandler  gin.HandlerFunc

	// Plan catalog endpoints.
	ListPlansHandler gin.HandlerFunc

	// Auth endpoints.
	LoginHandler gin.HandlerFunc

	// Account endpoints.
	GetAccountHandler gin.HandlerFunc

	// Profile endpoints.
	ListProfilesHandler  gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	SelectProfileHandler gin.HandlerFunc

	// Catalog endpoints.
	HomeFeedHandler      gin.HandlerFunc
	FeaturedMovieHandler gin.HandlerFunc
	MovieDetailHandler   gin.HandlerFunc
	SearchMoviesHandler  gin.HandlerFunc
}
