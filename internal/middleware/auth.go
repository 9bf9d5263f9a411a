package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/pkg/token"
)

// TokenValidator defines the interface for access token validation
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// Auth returns a middleware that requires a valid bearer token. The
// authenticated user ID is placed in the request context; handlers read it
// with GetUserID.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := validateRequest(validator, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth is like Auth but lets unauthenticated requests through.
// A valid token still puts the user ID in context; a missing or invalid
// one leaves it empty.
func OptionalAuth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := validateRequest(validator, r)
			if problem != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user ID from context, or "" if the
// request carried no valid identity.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func validateRequest(validator TokenValidator, r *http.Request) (*token.Claims, *model.ProblemDetails) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, model.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, model.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := validator.Validate(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenExpired):
			return nil, model.NewUnauthorizedError("token expired")
		case errors.Is(err, token.ErrInvalidSignature):
			return nil, model.NewUnauthorizedError("invalid token signature")
		default:
			return nil, model.NewUnauthorizedError("invalid token")
		}
	}

	return claims, nil
}
