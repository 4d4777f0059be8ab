package handler

import (
	"net/http"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/reward"
)

// AwardRequest represents the request to grant a task-completion reward
type AwardRequest struct {
	TaskKind string `json:"task_kind" validate:"required,taskkind"`
}

// BalanceResponse represents a user's current currency balance
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// AwardResponse represents the result of a granted reward
type AwardResponse struct {
	UserID     string `json:"user_id"`
	TaskKind   string `json:"task_kind"`
	NewBalance int64  `json:"new_balance"`
}

// RewardHandler handles currency-related HTTP requests
type RewardHandler struct {
	rewardSvc reward.Service
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardSvc reward.Service) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

// GetBalance handles the balance endpoint
// @Summary Get currency balance
// @Description Returns the user's current balance; 0 for users without an account
// @Tags reward
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reward/currency [get]
func (h *RewardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	balance, err := h.rewardSvc.GetBalance(r.Context(), userID)
	if err != nil {
		log.Error(ErrMsgGetBalanceFailed, "error", err, "user_id", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
}

// Award handles the task-completion reward endpoint
// @Summary Award a task-completion reward
// @Description Credits the configured reward amount for the given task kind
// @Tags reward
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body AwardRequest true "Award request"
// @Success 200 {object} AwardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reward/award [post]
func (h *RewardHandler) Award(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req AwardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award"); err != nil {
		return
	}

	kind := domain.TaskKind(req.TaskKind)
	newBalance, err := h.rewardSvc.AwardForTaskCompletion(r.Context(), userID, kind)
	if err != nil {
		log.Error(ErrMsgAwardFailed, "error", err, "user_id", userID, "task_kind", kind)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Task reward granted", "user_id", userID, "task_kind", kind, "new_balance", newBalance)

	respondJSON(w, http.StatusOK, AwardResponse{
		UserID:     userID,
		TaskKind:   req.TaskKind,
		NewBalance: newBalance,
	})
}
