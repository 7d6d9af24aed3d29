package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrInvalidHeader = errors.New("invalid authorization header format")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the payload carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

// IsAdmin reports whether the token holder may use the operator endpoints.
func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey string        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.secretKey = key }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a new JWT instance. Tokens live one hour unless configured.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for userID with the given role.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and validates tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	if claims.Role == "" {
		claims.Role = models.RoleUser
	}
	return claims, nil
}

// Validate reports whether tokenString is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}
