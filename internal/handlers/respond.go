package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-spin-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
)

// ErrorResponse is the body of every non-settlement error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

type tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest writes 401 and returns nil when the request carries no
// valid token.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, t tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := t.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized request: missing or invalid token", "path", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := t.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}
	return claims
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
