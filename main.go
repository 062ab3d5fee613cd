package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"therewecome/config"
	"therewecome/handlers"
	"therewecome/middleware"
	"therewecome/routes"
	"therewecome/services/api"
	"therewecome/services/booking"
	"therewecome/services/session"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg := config.AppConfig
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sessionCache := utils.GetSessionCacheClient()
	wizardCache := utils.GetWizardCacheClient()

	// remote API.
	apiClient := api.NewClient(api.Options{
		BaseURL:      cfg.APIURL,
		Timeout:      cfg.APITimeout(),
		FailureRatio: cfg.BreakerFailureRatio,
		Logger:       logger.Named("api"),
	})

	// services.
	sessionStore := utils.NewRedisSessionStore(sessionCache, cfg.SessionTTL())
	sessions := session.NewManager(sessionStore, apiClient, logger.Named("session"))
	wizardStore := booking.NewRedisStateStore(wizardCache, cfg.WizardTTL())

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Sessions:    sessions,
		Booking:     apiClient,
		WizardStore: wizardStore,
		Stylist:     handlers.NewStylistHandler(apiClient),
		Admin:       handlers.NewAdminHandler(apiClient),
	}, logger)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Sugar().Fatalf("main: invalid trusted proxies: %v", err)
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(sessions, cfg.SessionCookie, cfg.SessionTTL()))

	routes.RegisterRoutes(router, handlerBundle, cfg.CORSOrigins)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(ctx, map[string]*redis.Client{
		"session": sessionCache,
		"wizard":  wizardCache,
	}, apiClient.Ping)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	_ = sessionCache.Close()
	_ = wizardCache.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
