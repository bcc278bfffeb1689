package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bdgc-website/config"
	"bdgc-website/internal/contact"
	"bdgc-website/internal/content"
	"bdgc-website/internal/delivery/http/middleware"
	"bdgc-website/internal/delivery/http/site"
	v1 "bdgc-website/internal/delivery/http/v1"
	"bdgc-website/internal/usecase"
	"bdgc-website/pkg/logger"
	"bdgc-website/pkg/redis"
	"bdgc-website/pkg/relay"
	"bdgc-website/web"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info("Starting B&D General Contractor site", "port", cfg.Port, "site_url", cfg.SiteURL)

	// 3. Load site content
	siteContent, err := content.Load()
	if err != nil {
		logger.Log.Error("Invalid site content", "error", err)
		os.Exit(1)
	}

	templates, err := site.ParseTemplates(web.Templates)
	if err != nil {
		logger.Log.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var redisClient goredis.UniversalClient
	var redisPing usecase.Pinger
	if cfg.RedisURL != "" {
		client, err := redis.Connect(context.Background(), redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		} else {
			defer client.Close()
			redisClient = client
			redisPing = func(ctx context.Context) error { return redis.HealthCheck(ctx, client) }
		}
	}

	// 5. Setup Relay Client
	relayClient := relay.NewClient(relay.Config{
		Endpoint:  cfg.RelayEndpoint,
		AccessKey: cfg.RelayAccessKey,
		FromName:  cfg.RelayFromName,
		Timeout:   cfg.RelayTimeout,
	})
	if !relayClient.IsConfigured() {
		logger.Log.Warn("Form relay not configured - contact form will be unavailable")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(contact.NewValidator(), relayClient, logger.Log)
	showcaseUC, err := usecase.NewShowcaseUsecase(siteContent.Projects, siteContent.Testimonials)
	if err != nil {
		logger.Log.Error("Failed to build showcase", "error", err)
		os.Exit(1)
	}
	healthUC := usecase.NewHealthUsecase(relayClient.IsConfigured(), redisPing)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		ShowcaseUC:  showcaseUC,
		HealthUC:    healthUC,
		Site:        siteContent,
		Templates:   templates,
		Static:      web.Static(),
		RateLimiter: middleware.NewRateLimiter(redisClient, logger.Log),
		Logger:      logger.Log,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
