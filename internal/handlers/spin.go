package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-spin-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/services"
)

//go:generate mockgen -source=spin.go -destination=mock_spin_test.go -package=handlers

// SpinTokener defines only the methods needed by this handler.
type SpinTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Spinner settles one spin.
type Spinner interface {
	Spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error)
}

// SpinRequest is the JSON body of a spin.
// swagger:model SpinRequest
type SpinRequest struct {
	// Client device fingerprint
	// default: ios-7f3a
	DeviceID string `json:"device_id"`
}

// SpinErrorResponse is returned when a spin is rejected.
// swagger:model SpinErrorResponse
type SpinErrorResponse struct {
	// Stable error code
	// default: cooldown_active
	Error string `json:"error"`

	// Human readable reason
	Message string `json:"message"`

	// Seconds until the next spin is allowed, cooldown only
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}

var spinStatus = map[string]int{
	services.CodeBlocked:           http.StatusForbidden,
	services.CodeNoSpinsAvailable:  http.StatusPaymentRequired,
	services.CodeCooldownActive:    http.StatusTooManyRequests,
	services.CodeInsufficientFunds: http.StatusConflict,
	services.CodeInternal:          http.StatusInternalServerError,
}

// NewSpinHandler returns an HTTP handler that settles one spin for the caller.
// @Summary Spin the wheel
// @Description Consumes one spin credit, draws an outcome and credits it to the wallet
// @Tags spin
// @Accept json
// @Produce json
// @Param request body handlers.SpinRequest false "Device fingerprint"
// @Success 200 {object} models.SpinResult "Settled spin"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.SpinErrorResponse "No spins available"
// @Failure 403 {object} handlers.SpinErrorResponse "Account blocked"
// @Failure 409 {object} handlers.SpinErrorResponse "Insufficient funds"
// @Failure 429 {object} handlers.SpinErrorResponse "Cooldown active"
// @Failure 500 {object} handlers.SpinErrorResponse "Internal server error"
// @Router /spin [post]
// @Security BearerAuth
func NewSpinHandler(spinner Spinner, tokenGetter SpinTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var body SpinRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if body.DeviceID == "" {
			body.DeviceID = r.Header.Get("X-Device-ID")
		}

		result, err := spinner.Spin(r.Context(), models.SpinRequest{
			UserID:    claims.UserID,
			IPAddress: clientIP(r),
			DeviceID:  body.DeviceID,
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			writeSpinError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeSpinError(w http.ResponseWriter, err error) {
	var spinErr *services.SpinError
	if !errors.As(err, &spinErr) {
		logger.Log.Errorw("unexpected spin error", "error", err)
		writeJSON(w, http.StatusInternalServerError, SpinErrorResponse{
			Error:   services.CodeInternal,
			Message: "internal error",
		})
		return
	}

	status, ok := spinStatus[spinErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if spinErr.Code == services.CodeCooldownActive {
		w.Header().Set("Retry-After", strconv.Itoa(spinErr.RetryAfterSeconds))
	}
	writeJSON(w, status, SpinErrorResponse{
		Error:             spinErr.Code,
		Message:           spinErr.Message,
		RetryAfterSeconds: spinErr.RetryAfterSeconds,
	})
}
