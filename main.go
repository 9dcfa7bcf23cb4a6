package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamify/config"
	"streamify/cron"
	"streamify/database"
	invoiceRepoPkg "streamify/database/repository/invoice"
	userRepoPkg "streamify/database/repository/user"
	"streamify/handlers"
	"streamify/middleware"
	"streamify/routes"
	"streamify/services/catalog"
	"streamify/services/profile"
	"streamify/services/signup"
	"streamify/services/user"
	"streamify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	// services.
	signupService := &signup.DefaultService{
		Drafts:   signup.NewRedisDraftStore(utils.GetSessionCacheClient(), 30*time.Minute),
		Repo:     userRepo,
		Invoices: invoiceRepo,
		Payments: signup.NewPaymentProcessor(logger),
	}

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Invoices: invoiceRepo,
	}

	tmdbClient := catalog.NewClient(
		config.AppConfig.TMDBBaseURL,
		config.AppConfig.TMDBAPIKey,
		time.Duration(config.AppConfig.TMDBTimeoutSeconds)*time.Second,
	)
	catalogService := catalog.NewDefaultService(tmdbClient, utils.GetCacheClient(), logger)

	profileService := profile.NewDefaultService(utils.GetSessionCacheClient())

	// handlers.
	signupHandler := handlers.NewSignupHandler(signupService)
	authHandler := handlers.NewAuthHandler(userService)
	accountHandler := handlers.NewAccountHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Signup wizard endpoints.
		StartSignupHandler:         signupHandler.StartSignupHandler,
		GetSignupStepHandler:       signupHandler.GetSignupStepHandler,
		SetPasswordHandler:         signupHandler.SetPasswordHandler,
		SelectPlanHandler:          signupHandler.SelectPlanHandler,
		SelectPaymentMethodHandler: signupHandler.SelectPaymentMethodHandler,
		SubmitCardHandler:          signupHandler.SubmitCardHandler,
		SubmitUpiHandler:           signupHandler.SubmitUpiHandler,
		SignupSuccessHandler:       signupHandler.SignupSuccessHandler,
		AcknowledgeSuccessHandler:  signupHandler.AcknowledgeSuccessHandler,

		// Plan catalog endpoints.
		ListPlansHandler: handlers.ListPlansHandler,

		// Auth endpoints.
		LoginHandler: authHandler.LoginHandler,

		// Account endpoints.
		GetAccountHandler: accountHandler.GetAccountHandler,

		// Profile endpoints.
		ListProfilesHandler:  profileHandler.ListProfilesHandler,
		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpdateProfileHandler: profileHandler.UpdateProfileHandler,
		SelectProfileHandler: profileHandler.SelectProfileHandler,

		// Catalog endpoints.
		HomeFeedHandler:      catalogHandler.HomeFeedHandler,
		FeaturedMovieHandler: catalogHandler.FeaturedMovieHandler,
		MovieDetailHandler:   catalogHandler.MovieDetailHandler,
		SearchMoviesHandler:  catalogHandler.SearchMoviesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background catalog cache warmer.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	cron.InitCatalogWorker(workerCtx, catalogService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
