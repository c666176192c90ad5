package handler

import (
	"errors"
	"fmt"
	"net/http"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Login(userID, password string) (model.AuthResult, error)
	ToggleAuction(userID string, itemID int, active bool) error
	StartAllAuctions(userID string) error
	StopAllAuctions(userID string) error
	PlaceBid(itemID int, bidder, password string, amount int64) (model.Bid, error)
	UpdateCategory(userID, category string, count float64) error
	Snapshot() model.Snapshot
	Item(itemID int) (model.Item, error)
	Bids(itemID int) ([]model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// LoginHandler handles POST /login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	res, err := h.service.Login(req.UserID, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login rejected", map[string]any{"user_id": req.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LoginResult{Success: res.Accepted, IsAdmin: res.IsAdmin}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": req.UserID, "is_admin": res.IsAdmin})
}

// PlaceBidHandler handles POST /bids.
// Rejected bids are not reported back; the next broadcast is the only signal.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	if _, err := h.service.PlaceBid(req.ItemID, req.Name, req.Password, req.Amount); err != nil {
		utils.Debug("PlaceBidHandler: bid not applied", map[string]any{"item_id": req.ItemID, "user_id": req.Name, "error": err.Error()})
	}

	utils.JSONResponse(c, http.StatusAccepted, nil, "bid received")
}

// ToggleAuctionHandler handles POST /items/:item_id/toggle
func (h *AuctionHandler) ToggleAuctionHandler(c *gin.Context) {
	itemID, err := helpers.ParseItemID(c, "item_id")
	if err != nil {
		helpers.HandleBindError(c, "ToggleAuctionHandler", err)
		return
	}

	var req helpers.ToggleAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleAuctionHandler", err)
		return
	}

	if err := h.service.ToggleAuction(req.UserID, itemID, *req.Active); err != nil {
		utils.Debug("ToggleAuctionHandler: toggle not applied", map[string]any{"item_id": itemID, "user_id": req.UserID, "error": err.Error()})
	}

	utils.JSONResponse(c, http.StatusAccepted, nil, "toggle received")
}

// StartAllHandler handles POST /auctions/start
func (h *AuctionHandler) StartAllHandler(c *gin.Context) {
	h.setAll(c, "StartAllHandler", h.service.StartAllAuctions)
}

// StopAllHandler handles POST /auctions/stop
func (h *AuctionHandler) StopAllHandler(c *gin.Context) {
	h.setAll(c, "StopAllHandler", h.service.StopAllAuctions)
}

func (h *AuctionHandler) setAll(c *gin.Context, handlerName string, op func(userID string) error) {
	var req helpers.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	if err := op(req.UserID); err != nil {
		utils.Debug(handlerName+": request not applied", map[string]any{"user_id": req.UserID, "error": err.Error()})
	}

	utils.JSONResponse(c, http.StatusAccepted, nil, "request received")
}

// UpdateCategoryHandler handles PUT /categories/:category
func (h *AuctionHandler) UpdateCategoryHandler(c *gin.Context) {
	var req helpers.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCategoryHandler", err)
		return
	}
	category := c.Param("category")

	count := helpers.ParseCount(req.Count)
	if err := h.service.UpdateCategory(req.UserID, category, count); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateCategoryHandler: update rejected", map[string]any{"category": category, "user_id": req.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CategoryResult{Success: true}, "category updated")
	helpers.LogSuccess("UpdateCategoryHandler", "category updated", map[string]any{"category": category, "count": count})
}

// GetItemsHandler handles GET /items
func (h *AuctionHandler) GetItemsHandler(c *gin.Context) {
	snap := h.service.Snapshot()
	utils.JSONResponse(c, http.StatusOK, snap, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseItemID(c, "item_id")
	if err == nil {
		var item model.Item
		if item, err = h.service.Item(itemID); err == nil {
			utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
			return
		}
	}

	h.readError(c, "GetItemHandler", err)
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseItemID(c, "item_id")
	if err == nil {
		var bids []model.Bid
		if bids, err = h.service.Bids(itemID); err == nil {
			if bids == nil {
				bids = []model.Bid{}
			}
			utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
			return
		}
	}

	h.readError(c, "GetBidsByItemHandler", err)
}

func (h *AuctionHandler) readError(c *gin.Context, handlerName string, err error) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if !errors.Is(err, biddingerrors.ErrUnknownItem) {
		utils.Error(handlerName+": read failed", map[string]any{"error": err.Error()})
	}
}
