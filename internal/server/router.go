package server

import (
	"net/http"
	"slices"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/broadcast"
	"live-auction/internal/repository"
	handler "live-auction/services/auction/handler"
	"live-auction/services/auction/ws"
	"live-auction/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the components the router exposes
type Dependencies struct {
	Service        *bidding.AuctionService
	Hub            *broadcast.Hub
	Users          repository.IdentityStore
	WSOptions      ws.Options
	AllowedOrigins []string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag requests
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(corsMiddleware(deps.AllowedOrigins))

	auctionHandler := handler.NewAuctionHandler(deps.Service)
	gateway := ws.NewGateway(deps.Service, deps.WSOptions)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{
			"status":    "ok",
			"observers": deps.Hub.Count(),
			"users":     deps.Users.Count(),
		}, "healthy")
	})

	router.GET("/ws", gateway.ServeWS)
	router.POST("/login", auctionHandler.LoginHandler)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.GetItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.GetBidsByItemHandler)
		items.POST("/:item_id/toggle", auctionHandler.ToggleAuctionHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("/start", auctionHandler.StartAllHandler)
		auctions.POST("/stop", auctionHandler.StopAllHandler)
	}

	categories := router.Group("/categories")
	{
		categories.PUT("/:category", auctionHandler.UpdateCategoryHandler)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", requestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
