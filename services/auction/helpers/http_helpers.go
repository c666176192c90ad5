package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"live-auction/internal/biddingerrors"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseItemID reads a positive integer item id from a path parameter
func ParseItemID(c *gin.Context, param string) (int, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("item id %q: %w", c.Param(param), biddingerrors.ErrUnknownItem)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrUnknownItem):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, biddingerrors.ErrWrongPassword):
		return http.StatusUnauthorized, "wrong password"
	case errors.Is(err, biddingerrors.ErrInvalidIdentity):
		return http.StatusBadRequest, "invalid user identifier"
	case errors.Is(err, biddingerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, biddingerrors.ErrInvalidCount):
		return http.StatusBadRequest, "count must be between 1 and 100"
	case errors.Is(err, biddingerrors.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid category name"
	case errors.Is(err, biddingerrors.ErrInactiveItem):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, biddingerrors.ErrStaleBid):
		return http.StatusConflict, "bid amount too low"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ParseCount turns anything that is not a JSON number into NaN, which the
// service rejects as an invalid count after its admin check.
func ParseCount(raw json.RawMessage) float64 {
	var count float64
	if err := json.Unmarshal(raw, &count); err != nil {
		return math.NaN()
	}
	return count
}
