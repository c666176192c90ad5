package helpers

import "encoding/json"

// Request/Response DTOs shared by the HTTP handlers and the websocket gateway.
// Field names follow the wire format clients already speak.

type LoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password"`
}

type PlaceBidRequest struct {
	ItemID   int    `json:"itemId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
	Amount   int64  `json:"amount"`
}

type ToggleAuctionRequest struct {
	UserID string `json:"userId" binding:"required"`
	ItemID int    `json:"itemId"`
	Active *bool  `json:"active" binding:"required"`
}

type AdminRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// UpdateCategoryRequest keeps count raw: validating it is the service's job,
// after the admin check.
type UpdateCategoryRequest struct {
	UserID   string          `json:"userId" binding:"required"`
	Category string          `json:"category"`
	Count    json.RawMessage `json:"count"`
}

// CategoryResult is the reply to an updateCategory request
type CategoryResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResult is the reply to a login request
type LoginResult struct {
	Success bool   `json:"success"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message,omitempty"`
}
