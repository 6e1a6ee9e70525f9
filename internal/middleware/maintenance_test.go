package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

type mockSettingsProvider struct {
	CachedFunc func(ctx context.Context) (*model.SiteSettings, error)
}

func (m *mockSettingsProvider) Cached(ctx context.Context) (*model.SiteSettings, error) {
	return m.CachedFunc(ctx)
}

func maintenanceOn() *mockSettingsProvider {
	return &mockSettingsProvider{
		CachedFunc: func(ctx context.Context) (*model.SiteSettings, error) {
			return &model.SiteSettings{MaintenanceMode: true}, nil
		},
	}
}

func TestMaintenance_RedirectsPageLoads(t *testing.T) {
	called := false
	handler := Maintenance(maintenanceOn())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/blog/some-post", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Errorf("expected 307, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/maintenance" {
		t.Errorf("expected redirect to /maintenance, got %q", got)
	}
	if called {
		t.Error("handler should not run during maintenance")
	}
}

func TestMaintenance_ExemptPaths(t *testing.T) {
	paths := []string{
		"/api/forum/topics",
		"/api/settings",
		"/admin",
		"/admin/dashboard",
		"/maintenance",
		"/login",
		"/favicon.ico",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			called := false
			handler := Maintenance(maintenanceOn())(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if !called {
				t.Errorf("expected %s to bypass the maintenance gate", path)
			}
		})
	}
}

func TestMaintenance_OffPassesThrough(t *testing.T) {
	provider := &mockSettingsProvider{
		CachedFunc: func(ctx context.Context) (*model.SiteSettings, error) {
			return &model.SiteSettings{MaintenanceMode: false}, nil
		},
	}

	called := false
	handler := Maintenance(provider)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/blog/some-post", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected request through with maintenance off")
	}
}

func TestMaintenance_FailsOpen(t *testing.T) {
	provider := &mockSettingsProvider{
		CachedFunc: func(ctx context.Context) (*model.SiteSettings, error) {
			return nil, errors.New("database unreachable")
		},
	}

	called := false
	handler := Maintenance(provider)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/blog/some-post", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected a settings failure to let the request through")
	}
}
