package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/services"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet_test.go -package=handlers

// WalletTokener defines only the methods needed by the wallet handlers.
type WalletTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletReader defines the interface that the service must implement.
type WalletReader interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// WithdrawalRequester reserves funds for a withdrawal.
type WithdrawalRequester interface {
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount int64, ipAddress, deviceID string) (*models.WalletDB, error)
}

// WalletResponse is the caller's wallet. Amounts are in cents.
// swagger:model WalletResponse
type WalletResponse struct {
	AvailableBalance int64 `json:"available_balance"`
	PendingBalance   int64 `json:"pending_balance"`
	AvailableSpins   int64 `json:"available_spins"`
	TotalWinnings    int64 `json:"total_winnings"`
	TotalLosses      int64 `json:"total_losses"`
}

func walletResponse(wallet *models.WalletDB) WalletResponse {
	return WalletResponse{
		AvailableBalance: wallet.AvailableBalance,
		PendingBalance:   wallet.PendingBalance,
		AvailableSpins:   wallet.AvailableSpins,
		TotalWinnings:    wallet.TotalWinnings,
		TotalLosses:      wallet.TotalLosses,
	}
}

// AmountRequest carries an amount in cents.
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount in cents
	// required: true
	// default: 1000
	Amount int64 `json:"amount"`
}

// NewGetWalletHandler returns an HTTP handler for fetching the caller's wallet.
// @Summary Get wallet
// @Description Returns balances and spin credits of the caller
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletResponse "Wallet"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(walletReader WalletReader, tokenGetter WalletTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		wallet, err := walletReader.GetWallet(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, walletResponse(wallet))
	}
}

// NewRequestWithdrawalHandler returns an HTTP handler that moves funds from
// the available to the pending balance until the withdrawal is reviewed.
// @Summary Request withdrawal
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.AmountRequest true "Withdrawal amount"
// @Success 200 {object} handlers.WalletResponse "Wallet after the reservation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet/withdrawals [post]
// @Security BearerAuth
func NewRequestWithdrawalHandler(requester WithdrawalRequester, tokenGetter WalletTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		wallet, err := requester.RequestWithdrawal(r.Context(), claims.UserID, req.Amount, clientIP(r), r.Header.Get("X-Device-ID"))
		if err != nil {
			writeWalletError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, walletResponse(wallet))
	}
}

func writeWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "amount must be positive"})
	case errors.Is(err, services.ErrInsufficientFunds):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "insufficient funds"})
	default:
		logger.Log.Errorw("wallet operation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
