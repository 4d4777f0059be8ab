package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Header error messages
	ErrMsgMissingUserID = "Missing X-User-ID header"

	// Reward operation error messages
	ErrMsgGetBalanceFailed = "Failed to get balance"
	ErrMsgAwardFailed      = "Failed to award task reward"

	// Gacha operation error messages
	ErrMsgPullFailed         = "Failed to perform gacha pull"
	ErrMsgGetInventoryFailed = "Failed to get inventory"

	// Admin operation error messages
	ErrMsgCreateItemFailed = "Failed to create item"
	ErrMsgUpdateItemFailed = "Failed to update item"
	ErrMsgInvalidItemID    = "Invalid item ID"
)
