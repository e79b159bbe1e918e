package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog/config"
	"blog/controllers"
	"blog/database"
	"blog/logger"
	"blog/middleware"
	"blog/repositories"
	"blog/routes"
	"blog/services"
	"blog/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "blog/docs"
)

// @title Blog API
// @version 1.0.0
// @description CRUD API for blog posts with bearer token issuance.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if envErr != nil {
		log.Debugf("No .env file loaded: %v", envErr)
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := validation.Setup(); err != nil {
		log.Fatalf("Failed to set up validation: %v", err)
	}

	userRepo := repositories.NewGormUserRepository(db)
	tokenRepo := repositories.NewGormTokenRepository(db)
	postRepo := repositories.NewGormPostRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo, cfg.TokenTTL, log)
	postService := services.NewPostService(postRepo)

	postController := controllers.NewPostController(postService)
	authController := controllers.NewAuthController(authService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler(log))

	routes.SetupRoutes(r, postController, authController, routes.Options{
		AuthEnabled:   cfg.AuthEnabled,
		Authenticator: authService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s (auth enabled: %t)", cfg.Port, cfg.AuthEnabled)
		log.Infof("Swagger docs available at: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server exited")
}
