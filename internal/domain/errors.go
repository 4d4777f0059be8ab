package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Argument errors
	ErrMsgInvalidArgument = "invalid argument"
	ErrMsgInvalidTaskKind = "invalid task kind"
	ErrMsgInvalidPullMode = "invalid pull mode"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Catalog errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgNoItemsAvailable = "no items available"

	// Upstream errors
	ErrMsgUpstreamUnavailable = "upstream unavailable"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Argument errors
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)
	ErrInvalidTaskKind = errors.New(ErrMsgInvalidTaskKind)
	ErrInvalidPullMode = errors.New(ErrMsgInvalidPullMode)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Catalog errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrNoItemsAvailable = errors.New(ErrMsgNoItemsAvailable)

	// Upstream errors
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
