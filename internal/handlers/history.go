package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/services"
)

//go:generate mockgen -source=history.go -destination=mock_history_test.go -package=handlers

// HistoryTokener defines only the methods needed by the history handlers.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryReader lists a user's settled spins.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.SpinRecordDB, error)
}

// SpinVerifier re-checks the signature of a stored spin.
type SpinVerifier interface {
	VerifySpin(ctx context.Context, spinID, requester uuid.UUID, isAdmin bool) (bool, error)
}

// HistoryResponse lists spins newest first.
// swagger:model HistoryResponse
type HistoryResponse struct {
	Spins []models.SpinRecordDB `json:"spins"`
}

// VerifyRequest names the spin to verify.
// swagger:model VerifyRequest
type VerifyRequest struct {
	// required: true
	SpinID uuid.UUID `json:"spin_id"`
}

// VerifyResponse reports whether the stored signature still matches.
// swagger:model VerifyResponse
type VerifyResponse struct {
	SpinID uuid.UUID `json:"spin_id"`
	Valid  bool      `json:"valid"`
}

// NewHistoryHandler returns an HTTP handler listing the caller's latest spins.
// @Summary Spin history
// @Tags spin
// @Produce json
// @Param limit query int false "Number of spins, 1..100" default(20)
// @Success 200 {object} handlers.HistoryResponse "Spins"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /spins [get]
// @Security BearerAuth
func NewHistoryHandler(reader HistoryReader, tokenGetter HistoryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
				return
			}
			limit = n
		}

		spins, err := reader.History(r.Context(), claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list spins", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, HistoryResponse{Spins: spins})
	}
}

// NewVerifyHandler returns an HTTP handler that re-verifies a spin's
// signature. Users may verify their own spins, admins any spin.
// @Summary Verify spin signature
// @Tags spin
// @Accept json
// @Produce json
// @Param request body handlers.VerifyRequest true "Spin to verify"
// @Success 200 {object} handlers.VerifyResponse "Verification result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Spin not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /spins/verify [post]
// @Security BearerAuth
func NewVerifyHandler(verifier SpinVerifier, tokenGetter HistoryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SpinID == uuid.Nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		valid, err := verifier.VerifySpin(r.Context(), req.SpinID, claims.UserID, claims.IsAdmin())
		switch {
		case errors.Is(err, services.ErrSpinNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "spin not found"})
			return
		case err != nil:
			logger.Log.Errorw("failed to verify spin", "spinID", req.SpinID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, VerifyResponse{SpinID: req.SpinID, Valid: valid})
	}
}
