// File: xoadvisor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xoadvisor/config"
	"xoadvisor/database/repository"
	"xoadvisor/handlers"
	"xoadvisor/middleware"
	"xoadvisor/routes"
	"xoadvisor/services/admin"
	"xoadvisor/services/auth"
	"xoadvisor/services/directory"
	"xoadvisor/services/inquiry"
	"xoadvisor/services/profile"
	"xoadvisor/services/session"
	"xoadvisor/utils"

	"github.com/go-redis/redis/v8"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// devEncryptionKey seals profile fields when DATA_ENCRYPTION_KEY is unset
// outside production.
const devEncryptionKey = "xoadvisor-dev-encryption-key"

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, pingDB, err := repository.Open(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open store: %v", err)
	}
	utils.InitRedis()

	key := config.AppConfig.EncryptionKey
	if key == "" {
		logger.Warn("DATA_ENCRYPTION_KEY not set, using development key")
		key = devEncryptionKey
	}
	sealer, err := utils.NewSealer(key)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to create sealer: %v", err)
	}

	hub := session.NewHub(utils.GetCacheClient())
	if err := hub.Start(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to start session hub: %v", err)
	}
	utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, pingDB)

	// services.
	authService := auth.NewAuthService(store, utils.GetAuthCacheClient(), hub, config.AppConfig.TokenTTL)
	inquiryService := inquiry.NewInquiryService(store.Inquiries)
	profileService := profile.NewProfileService(store.Profiles, sealer)
	adminService := admin.NewAdminService(store, sealer)
	directoryService := directory.NewDirectoryService(store.Resources)

	handlerBundle := &handlers.HandlerBundle{
		Sessions:       authService,
		RequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		Auth:           handlers.NewAuthHandler(authService, hub),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		Inquiry:        handlers.NewInquiryHandler(inquiryService),
		Profile:        handlers.NewProfileHandler(profileService, inquiryService),
		Admin:          handlers.NewAdminHandler(adminService),
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("driver", config.AppConfig.DBDriver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Info("main: server stopped gracefully")
}
