package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

// Rejection reasons returned by the settlement path.
var (
	ErrBlocked           = errors.New("account blocked")
	ErrNoSpinsAvailable  = errors.New("no spins available")
	ErrCooldownActive    = errors.New("cooldown active")
	ErrInsufficientFunds = models.ErrInsufficientFunds
	ErrSettlementFailed  = errors.New("settlement failed")
)

// Stable reason codes carried by SpinError.
const (
	CodeBlocked           = "blocked"
	CodeNoSpinsAvailable  = "no_spins_available"
	CodeCooldownActive    = "cooldown_active"
	CodeInsufficientFunds = "insufficient_funds"
	CodeInternal          = "internal"
)

// SpinError is the typed rejection of a spin request. Message is safe to
// show to the user; Err is for logs and errors.Is.
type SpinError struct {
	Code              string
	Message           string
	RetryAfterSeconds int
	Err               error
}

func (e *SpinError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *SpinError) Unwrap() error {
	return e.Err
}

func blockedError(reason string) *SpinError {
	if reason == "" {
		reason = "account is blocked"
	}
	return &SpinError{Code: CodeBlocked, Message: reason, Err: ErrBlocked}
}

func noSpinsError() *SpinError {
	return &SpinError{Code: CodeNoSpinsAvailable, Message: "no spins available, purchase more to continue", Err: ErrNoSpinsAvailable}
}

func cooldownError(retryAfter int) *SpinError {
	return &SpinError{
		Code:              CodeCooldownActive,
		Message:           fmt.Sprintf("please wait %d seconds before the next spin", retryAfter),
		RetryAfterSeconds: retryAfter,
		Err:               ErrCooldownActive,
	}
}

func insufficientFundsError() *SpinError {
	return &SpinError{Code: CodeInsufficientFunds, Message: "spin credit already used, try again", Err: ErrInsufficientFunds}
}

func internalError(err error) *SpinError {
	return &SpinError{Code: CodeInternal, Message: "internal error", Err: fmt.Errorf("%w: %w", ErrSettlementFailed, err)}
}
