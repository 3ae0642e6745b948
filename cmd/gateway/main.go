package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bookstore/internal/api/http"
	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/config"
	"github.com/spec-kit/bookstore/internal/gateway"
	"github.com/spec-kit/bookstore/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	policy := auth.NewRoutePolicy(cfg.Gateway.PublicPaths, cfg.Gateway.ProtectedPaths)
	authenticator := gateway.NewAuthenticator(tokens, policy, logger, metrics)

	app := fiber.New()
	app.Use(gateway.CORS(cfg.Gateway.AllowOrigin))
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(authenticator.Handle)
	gateway.RegisterRoutes(app, cfg.Gateway)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
