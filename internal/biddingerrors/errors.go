package biddingerrors

import "errors"

// Identity errors
var (
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidIdentity = errors.New("invalid user identifier")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
)

// Catalog errors
var (
	ErrUnknownItem     = errors.New("item not found")
	ErrInvalidCount    = errors.New("category count must be an integer between 1 and 100")
	ErrInvalidCategory = errors.New("invalid category name")
)

// business logic errors
var (
	ErrInactiveItem = errors.New("auction is not active for item")
	ErrStaleBid     = errors.New("bid amount must exceed current price")
)
