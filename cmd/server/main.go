// Package main runs the Old Oak Town site backend: listing intake, Stripe
// webhook, admin approval dashboard, public directory and chat endpoints.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oldoaktown/backend/config"
	"github.com/oldoaktown/backend/internal/admin"
	"github.com/oldoaktown/backend/internal/chat"
	"github.com/oldoaktown/backend/internal/directory"
	"github.com/oldoaktown/backend/internal/mailer"
	"github.com/oldoaktown/backend/internal/middleware"
	"github.com/oldoaktown/backend/internal/payments"
	"github.com/oldoaktown/backend/internal/submissions"
	"github.com/oldoaktown/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Stripe.WebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET not set; webhook signature verification is disabled")
	}

	mail := mailer.New(cfg.Email, logger)
	if !mail.Enabled() {
		logger.Info("SMTP not configured; email notifications disabled")
	}

	subRepo := submissions.NewRepository(cfg.Data.PendingFile)
	dirRepo := directory.NewRepository(cfg.Data.ApprovedFile)

	subHandler := submissions.NewHandler(subRepo, mail, logger)
	webhookHandler := payments.NewWebhookHandler(subRepo, cfg.Stripe.WebhookSecret, logger)
	checkoutHandler := payments.NewCheckoutHandler(cfg.Stripe, logger)
	adminHandler := admin.NewHandler(subRepo, dirRepo, cfg.Admin.Password, mail, logger)
	dirHandler := directory.NewHandler(dirRepo, logger)
	chatHandler := chat.NewHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/business-submit", subHandler.Submit)
		api.POST("/checkout-session", checkoutHandler.CreateSession)
		api.POST("/stripe-webhook", webhookHandler.HandleEvent)
		api.POST("/approve-listing", adminHandler.Approve)
		api.GET("/get-pending", adminHandler.Dashboard)
		api.GET("/businesses", dirHandler.List)
		api.POST("/chat", chatHandler.Message)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
