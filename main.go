package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/broadcast"
	"live-auction/internal/config"
	"live-auction/internal/repository"
	"live-auction/internal/server"
	"live-auction/services/auction/ws"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("failed to set log level", map[string]any{"error": err.Error()})
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	categories, err := cfg.CategoryConfig()
	if err != nil {
		utils.Fatal("invalid categories", map[string]any{"error": err.Error()})
	}

	users := repository.NewMemoryUserRepo(cfg.AdminUser)
	hub := broadcast.NewHub(cfg.SubscriberBuffer)
	auctionSvc := bidding.NewAuctionService(users, hub, categories)

	router := server.SetupRouter(server.Dependencies{
		Service: auctionSvc,
		Hub:     hub,
		Users:   users,
		WSOptions: ws.Options{
			WriteWait:       cfg.WSWriteWait,
			PongWait:        cfg.WSPongWait,
			PingPeriod:      cfg.WSPingPeriod,
			MaxMessageBytes: cfg.WSMaxMessageBytes,
			AllowedOrigins:  cfg.AllowedOrigins,
		},
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPServerAddress,
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{
			"address":    cfg.HTTPServerAddress,
			"admin_user": cfg.AdminUser,
			"items":      categories.Total(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	utils.Info("shutdown signal received", nil)

	// closing the hub ends every websocket session's write loop
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

// configPath returns the config file path from env or defaults to "app.env"
func configPath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "app.env"
}
