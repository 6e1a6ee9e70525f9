package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// SettingsProvider exposes the cached site settings to the maintenance gate
type SettingsProvider interface {
	Cached(ctx context.Context) (*model.SiteSettings, error)
}

// maintenanceExempt reports whether a path bypasses the maintenance gate.
// API routes, the admin surface, the login page, and the maintenance page
// itself stay reachable so the site can be administered back out of
// maintenance mode.
func maintenanceExempt(path string) bool {
	switch {
	case strings.HasPrefix(path, "/api"),
		strings.HasPrefix(path, "/admin"),
		path == "/maintenance",
		path == "/login",
		path == "/favicon.ico":
		return true
	}
	return false
}

// Maintenance returns a middleware that redirects page loads to the
// maintenance page while maintenance mode is on. A settings read failure
// lets the request through; the gate fails open.
func Maintenance(settings SettingsProvider) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maintenanceExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			current, err := settings.Cached(r.Context())
			if err == nil && current != nil && current.MaintenanceMode {
				http.Redirect(w, r, "/maintenance", http.StatusTemporaryRedirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
