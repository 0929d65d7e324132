package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/isdelr/md-editor-be/internal/models"
)

const (
	// TokenTypeAccess marks short-lived tokens accepted on protected routes.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens accepted only at /auth/refresh.
	TokenTypeRefresh = "refresh"
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// UserClaimsKey is the context key for user claims.
type contextKey string

const UserClaimsKey = contextKey("userClaims")

// Issuer signs and verifies bearer tokens. The signing key and lifetimes
// are injected at construction; there is no package-level key.
type Issuer struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates an Issuer with the given HMAC secret and token lifetimes.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		key:        []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken creates a new short-lived JWT for a given user.
func (i *Issuer) GenerateAccessToken(user models.User) (string, error) {
	return i.generate(user, TokenTypeAccess, i.accessTTL)
}

// GenerateRefreshToken creates a new long-lived JWT usable only for rotation.
func (i *Issuer) GenerateRefreshToken(user models.User) (string, error) {
	return i.generate(user, TokenTypeRefresh, i.refreshTTL)
}

func (i *Issuer) generate(user models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// ParseAccessToken parses and validates an access token string.
func (i *Issuer) ParseAccessToken(tokenStr string) (*Claims, error) {
	return i.parse(tokenStr, TokenTypeAccess)
}

// ParseRefreshToken parses and validates a refresh token string.
func (i *Issuer) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return i.parse(tokenStr, TokenTypeRefresh)
}

func (i *Issuer) parse(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return nil, models.ErrInvalidCredentials
	}
	// An access token must not pass as a refresh token or vice versa.
	if claims.TokenType != wantType {
		return nil, models.ErrInvalidCredentials
	}
	return claims, nil
}

// Middleware creates a middleware for protecting routes. It requires an
// Authorization header carrying a bearer access token and passes the
// decoded claims down via the request context.
func (i *Issuer) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, "Bearer ")
				if len(parts) == 2 {
					tokenStr = parts[1]
				}
			}
			if tokenStr == "" {
				unauthorized(w, "Missing auth token")
				return
			}

			claims, err := i.ParseAccessToken(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized answers 401 with the same {"message": ...} body shape the
// handlers use, so clients see one error format on every path.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// ClaimsFromContext extracts the authenticated claims stored by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	return claims, ok
}
