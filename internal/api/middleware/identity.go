package middleware

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const PlayerIDKey contextKey = "playerID"

var playerIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// Identity resolves the caller's player id. A Bearer token signed with the
// session secret wins; the X-Player-Id header is the unauthenticated
// fallback for anonymous play. Either way the id must match the allowed
// pattern.
func Identity(sessionSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID, err := resolvePlayerID(r, sessionSecret)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), PlayerIDKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolvePlayerID(r *http.Request, sessionSecret string) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errors.New("invalid authorization header")
		}
		return PlayerIDFromToken(parts[1], sessionSecret)
	}

	playerID := r.Header.Get("X-Player-Id")
	if !playerIDPattern.MatchString(playerID) {
		return "", errors.New("missing or invalid player id")
	}
	return playerID, nil
}

// PlayerIDFromToken validates an HS256 token and extracts the player id
// from the sub claim.
func PlayerIDFromToken(tokenString, sessionSecret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sessionSecret), nil
	})
	if err != nil {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || !playerIDPattern.MatchString(sub) {
		return "", errors.New("invalid token claims")
	}
	return sub, nil
}

func GetPlayerID(ctx context.Context) (string, bool) {
	playerID, ok := ctx.Value(PlayerIDKey).(string)
	return playerID, ok
}
