package middleware

import (
	"context"
	"net/http"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/pkg/token"
)

// Cookie names for the two identity domains. They are deliberately
// distinct: an admin session never doubles as a member session.
const (
	AdminCookieName  = "auth_token"
	MemberCookieName = "user_token"
)

// ClaimsKey is the context key for validated token claims
const ClaimsKey contextKey = "claims"

// TokenValidator defines the interface for token validation
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// AdminAuth returns a middleware that requires a valid admin cookie
func AdminAuth(validator TokenValidator) Middleware {
	return requireCookie(validator, AdminCookieName, token.RoleAdmin)
}

// MemberAuth returns a middleware that requires a valid member cookie
func MemberAuth(validator TokenValidator) Middleware {
	return requireCookie(validator, MemberCookieName, token.RoleMember)
}

func requireCookie(validator TokenValidator, cookieName, role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				model.NewUnauthorizedError("authentication required").WriteJSON(w)
				return
			}

			claims, err := validator.Validate(cookie.Value)
			if err != nil {
				switch err {
				case token.ErrTokenExpired:
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			if claims.Role != role {
				model.NewUnauthorizedError("invalid token").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalMemberAuth is like MemberAuth but lets unauthenticated requests
// through; a present, valid cookie still populates the context.
func OptionalMemberAuth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(MemberCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.Validate(cookie.Value)
			if err != nil || claims.Role != token.RoleMember {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated account ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the validated token claims from context
func GetClaims(ctx context.Context) *token.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}
