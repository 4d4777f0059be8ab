package handler

import (
	"net/http"
	"strings"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/gacha"
	"github.com/lilyapp/lily/internal/logger"
)

// PullResponse represents the result of a gacha pull
type PullResponse struct {
	Item       *domain.Item `json:"item"`
	NewBalance int64        `json:"new_balance"`
}

// InventoryResponse represents a user's acquired items
type InventoryResponse struct {
	UserID string                  `json:"user_id"`
	Items  []domain.InventoryEntry `json:"items"`
}

// GachaHandler handles gacha-related HTTP requests
type GachaHandler struct {
	gachaSvc gacha.Service
}

// NewGachaHandler creates a new gacha handler
func NewGachaHandler(gachaSvc gacha.Service) *GachaHandler {
	return &GachaHandler{gachaSvc: gachaSvc}
}

// Pull handles the catalog gacha endpoint
// @Summary Pull from the item catalog
// @Description Debits the pull cost and draws a rarity-weighted item
// @Tags gacha
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} PullResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reward/gacha [post]
func (h *GachaHandler) Pull(w http.ResponseWriter, r *http.Request) {
	h.pull(w, r, domain.PullModeInternalPool, gacha.PullParams{})
}

// ImagePull handles the external image gacha endpoint
// @Summary Pull an external image
// @Description Debits the pull cost and draws an image from the external source
// @Tags gacha
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param tags query string false "Comma-separated search tags"
// @Success 200 {object} PullResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reward/image-gacha [post]
func (h *GachaHandler) ImagePull(w http.ResponseWriter, r *http.Request) {
	h.pull(w, r, domain.PullModeExternalImage, gacha.PullParams{
		Tags: parseTagsParam(r.URL.Query().Get("tags")),
	})
}

// parseTagsParam splits a comma-separated tags value, dropping empty pieces.
func parseTagsParam(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (h *GachaHandler) pull(w http.ResponseWriter, r *http.Request, mode domain.PullMode, params gacha.PullParams) {
	log := logger.FromContext(r.Context())

	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	result, err := h.gachaSvc.Pull(r.Context(), userID, mode, params)
	if err != nil {
		log.Error(ErrMsgPullFailed, "error", err, "user_id", userID, "mode", mode)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, PullResponse{
		Item:       result.Item,
		NewBalance: result.NewBalance,
	})
}

// Inventory handles the inventory endpoint
// @Summary Get acquired items
// @Description Returns the user's acquisitions grouped by item
// @Tags gacha
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reward/inventory [get]
func (h *GachaHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	entries, err := h.gachaSvc.GetInventory(r.Context(), userID)
	if err != nil {
		log.Error(ErrMsgGetInventoryFailed, "error", err, "user_id", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	if entries == nil {
		entries = []domain.InventoryEntry{}
	}

	respondJSON(w, http.StatusOK, InventoryResponse{UserID: userID, Items: entries})
}
