package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

//go:generate mockgen -source=admin.go -destination=mock_admin_test.go -package=handlers

// WalletAdmin performs operator-approved wallet movements.
type WalletAdmin interface {
	CreditSpins(ctx context.Context, userID uuid.UUID, spins int64) (*models.WalletDB, error)
	ApproveDeposit(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error)
	ApproveWithdrawal(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error)
	RejectWithdrawal(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error)
}

// ActivityReporter reads the security trail of a user.
type ActivityReporter interface {
	UserActivity(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLogDB, error)
}

// DailyStatsReporter reads the operator-wide aggregate of a day.
type DailyStatsReporter interface {
	DailyStats(ctx context.Context, t time.Time) (*models.DailyStatDB, error)
}

// CreditSpinsRequest grants spin credits.
// swagger:model CreditSpinsRequest
type CreditSpinsRequest struct {
	// required: true
	// default: 10
	Spins int64 `json:"spins"`
}

// ActivityResponse lists activity entries newest first.
// swagger:model ActivityResponse
type ActivityResponse struct {
	Activity []models.ActivityLogDB `json:"activity"`
}

func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

// NewCreditSpinsHandler returns an HTTP handler granting spin credits.
// @Summary Credit spins
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body handlers.CreditSpinsRequest true "Spins to grant"
// @Success 200 {object} handlers.WalletResponse "Wallet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/wallets/{userID}/spins [post]
// @Security BearerAuth
func NewCreditSpinsHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var req CreditSpinsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		wallet, err := admin.CreditSpins(r.Context(), userID, req.Spins)
		if err != nil {
			writeWalletError(w, err)
			return
		}

		logger.Log.Infow("spins credited", "userID", userID, "spins", req.Spins)
		writeJSON(w, http.StatusOK, walletResponse(wallet))
	}
}

// NewApproveDepositHandler returns an HTTP handler crediting an approved deposit.
// @Summary Approve deposit
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body handlers.AmountRequest true "Deposit amount"
// @Success 200 {object} handlers.WalletResponse "Wallet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/wallets/{userID}/deposits [post]
// @Security BearerAuth
func NewApproveDepositHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		wallet, err := admin.ApproveDeposit(r.Context(), userID, req.Amount)
		if err != nil {
			writeWalletError(w, err)
			return
		}

		logger.Log.Infow("deposit approved", "userID", userID, "amount", req.Amount)
		writeJSON(w, http.StatusOK, walletResponse(wallet))
	}
}

// NewWithdrawalDecisionHandler returns an HTTP handler that approves or
// rejects a pending withdrawal.
// @Summary Decide withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param action path string true "approve or reject"
// @Param request body handlers.AmountRequest true "Withdrawal amount"
// @Success 200 {object} handlers.WalletResponse "Wallet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient pending balance"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/wallets/{userID}/withdrawals/{action} [post]
// @Security BearerAuth
func NewWithdrawalDecisionHandler(admin WalletAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var decide func(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error)
		switch action := chi.URLParam(r, "action"); action {
		case "approve":
			decide = admin.ApproveWithdrawal
		case "reject":
			decide = admin.RejectWithdrawal
		default:
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "action must be approve or reject"})
			return
		}

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		wallet, err := decide(r.Context(), userID, req.Amount)
		if err != nil {
			writeWalletError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, walletResponse(wallet))
	}
}

// NewUserActivityHandler returns an HTTP handler listing a user's activity.
// @Summary User activity
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Number of entries, 1..100" default(100)
// @Success 200 {object} handlers.ActivityResponse "Activity"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/users/{userID}/activity [get]
// @Security BearerAuth
func NewUserActivityHandler(reporter ActivityReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
				return
			}
			limit = n
		}

		entries, err := reporter.UserActivity(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list activity", "userID", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, ActivityResponse{Activity: entries})
	}
}

// NewDailyStatsHandler returns an HTTP handler for the operator aggregate of
// one UTC day, today by default.
// @Summary Daily stats
// @Tags admin
// @Produce json
// @Param day query string false "Day as YYYY-MM-DD"
// @Success 200 {object} models.DailyStatDB "Aggregate"
// @Failure 400 {object} handlers.ErrorResponse "Invalid day"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/stats/daily [get]
// @Security BearerAuth
func NewDailyStatsHandler(reporter DailyStatsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := time.Now()
		if raw := r.URL.Query().Get("day"); raw != "" {
			parsed, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
				return
			}
			day = parsed
		}

		stat, err := reporter.DailyStats(r.Context(), day)
		if err != nil {
			logger.Log.Errorw("failed to read daily stats", "day", day, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, stat)
	}
}
