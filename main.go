// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-breakfast/controllers"
	"go-breakfast/middleware"
	"go-breakfast/models"
	"go-breakfast/routes"
	"go-breakfast/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load catalog")
	}

	sessions := utils.NewSessionStore(cfg.SessionTTL)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret)
	go sweepSessions(ctx, sessions, sweepInterval(cfg.SessionTTL), logger)

	// Initialize controllers
	c := routes.Controllers{
		Menu:    controllers.NewMenuController(catalog),
		Session: controllers.NewSessionController(sessions, tokens, logger),
		Cart:    controllers.NewCartController(catalog, logger),
		Order:   controllers.NewOrderController(logger),
	}

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(logger))
	routes.RegisterRoutes(router, c, middleware.SessionMiddleware(tokens, sessions))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	logger.WithField("port", cfg.Port).Info("server is running")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server stopped")
	}
}

// loadCatalog reads the menu from MongoDB when configured, else uses the built-in menu
func loadCatalog(ctx context.Context, cfg utils.Config, logger *logrus.Logger) (*models.Catalog, error) {
	if cfg.MongoURI == "" {
		logger.Info("using built-in menu")
		return models.DefaultCatalog(), nil
	}

	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.WithError(err).Warn("mongo disconnect failed")
		}
	}()

	catalog, err := utils.LoadCatalog(ctx, client.Database(cfg.MongoDatabase))
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"database": cfg.MongoDatabase,
		"items":    len(catalog.Items()),
	}).Info("menu loaded from mongo")
	return catalog, nil
}

// sweepInterval keeps expired sessions in memory for at most a quarter TTL past expiry
func sweepInterval(ttl time.Duration) time.Duration {
	if every := ttl / 4; every >= time.Second {
		return every
	}
	return time.Second
}

func sweepSessions(ctx context.Context, sessions *utils.SessionStore, every time.Duration, logger logrus.FieldLogger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Sweep(now); n > 0 {
				logger.WithField("removed", n).Debug("expired sessions swept")
			}
		}
	}
}
