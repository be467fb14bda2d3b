package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is the full lifetime of an issued token. There is no
// revocation list; expiry is the only invalidation path, so a token
// stays usable for its remaining lifetime even after a client logout.
const TokenDuration = time.Hour

// GenerateToken issues a signed HS256 token carrying the user id and
// an expiry one hour out.
func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize resolves the Authorization header for operations that
// require identity. Missing, malformed, and expired tokens all yield
// the same 401.
func (h *AuthHandler) Authorize(ctx context.Context, authorization string) (uint, error) {
	userID, ok := h.Identify(authorization)
	if !ok {
		return 0, huma.Error401Unauthorized("Unauthorized")
	}
	return userID, nil
}

// Identify resolves the Authorization header for operations where
// identity is optional. Any failure means the caller is anonymous;
// nothing escapes this boundary.
func (h *AuthHandler) Identify(authorization string) (uint, bool) {
	tokenString, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(idFloat), true
}
