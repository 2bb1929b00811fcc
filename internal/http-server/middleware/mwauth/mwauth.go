// Package mwauth guards admin routes with the bearer JWT issued at login.
package mwauth

import (
	"context"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/auth"
	"debaren/internal/lib/logger/sl"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenValidator
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// New rejects requests without a valid token. The token is read from the
// Authorization header or the "token" query parameter.
func New(log *slog.Logger, validator TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractToken(r, "token")
			if token == "" {
				unauthorized(w, r, "missing token")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				log.Warn("rejected admin token", slog.String("path", r.URL.Path), sl.Err(err))
				msg := "invalid token"
				if errors.Is(err, auth.ErrMissingToken) {
					msg = "missing token"
				}
				unauthorized(w, r, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		}

		return http.HandlerFunc(fn)
	}
}

// Subject returns the authenticated admin, or "" outside guarded routes.
func Subject(ctx context.Context) string {
	if claims, ok := ctx.Value(ctxKey{}).(*auth.Claims); ok {
		return claims.Subject
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="debaren-admin"`)
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
