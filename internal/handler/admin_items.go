package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/repository"
)

// ItemRequest represents the body for creating or updating a catalog item
type ItemRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Rarity      int     `json:"rarity" validate:"required,min=1"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	ImageURL    *string `json:"image_url,omitempty"`
	Color1      *string `json:"color1,omitempty"`
	Color2      *string `json:"color2,omitempty"`
}

// ItemCreatedResponse represents the result of creating a catalog item
type ItemCreatedResponse struct {
	ItemID int `json:"item_id"`
}

// AdminItemHandler handles catalog management HTTP requests
type AdminItemHandler struct {
	items repository.Item
}

// NewAdminItemHandler creates a new admin item handler
func NewAdminItemHandler(items repository.Item) *AdminItemHandler {
	return &AdminItemHandler{items: items}
}

// CreateItem handles catalog item creation
// @Summary Create a catalog item
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item definition"
// @Success 201 {object} ItemCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/items [post]
func (h *AdminItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	id, err := h.items.InsertItem(r.Context(), requestToItem(&req))
	if err != nil {
		log.Error(ErrMsgCreateItemFailed, "error", err, "name", req.Name)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Catalog item created", "item_id", id, "name", req.Name)
	respondJSON(w, http.StatusCreated, ItemCreatedResponse{ItemID: id})
}

// UpdateItem handles catalog item updates
// @Summary Update a catalog item
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item definition"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/items/{id} [put]
func (h *AdminItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return
	}

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	if err := h.items.UpdateItem(r.Context(), itemID, requestToItem(&req)); err != nil {
		log.Error(ErrMsgUpdateItemFailed, "error", err, "item_id", itemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Catalog item updated", "item_id", itemID, "name", req.Name)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item updated"})
}

func requestToItem(req *ItemRequest) *domain.Item {
	return &domain.Item{
		Name:        req.Name,
		Rarity:      req.Rarity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Color1:      req.Color1,
		Color2:      req.Color2,
	}
}
