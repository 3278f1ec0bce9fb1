package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gin-giftregistry/app"
	"gin-giftregistry/infra"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := infra.NewLogger(cfg)
	if insecure := cfg.InsecureDefaults(); len(insecure) > 0 {
		log.Warnf("Using built-in development defaults for %s; set them before deploying", strings.Join(insecure, ", "))
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := infra.SetupDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	application := app.New(cfg, db, log)
	if err := application.Bootstrap(); err != nil {
		log.Fatalf("Failed to bootstrap database: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      application.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go application.RunSessionJanitor(janitorCtx, time.Hour)

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopJanitor()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}
