package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/pkg/token"
)

type mockValidator struct {
	ValidateFunc func(tokenString string) (*token.Claims, error)
}

func (m *mockValidator) Validate(tokenString string) (*token.Claims, error) {
	return m.ValidateFunc(tokenString)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth_MissingCookie(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			t.Error("validator should not run without a cookie")
			return nil, nil
		},
	}

	called := false
	handler := AdminAuth(validator)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler should not run without a cookie")
	}
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return nil, token.ErrInvalidToken
		},
	}

	called := false
	handler := AdminAuth(validator)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler should not run with an invalid token")
	}
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return nil, token.ErrTokenExpired
		},
	}

	handler := AdminAuth(validator)(okHandler(new(bool)))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "expired"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuth_RejectsMemberToken(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return &token.Claims{Subject: "user:1", Role: token.RoleMember}, nil
		},
	}

	called := false
	handler := AdminAuth(validator)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "member-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected member token rejected with 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler should not run for a cross-domain token")
	}
}

func TestAdminAuth_ValidToken(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return &token.Claims{Subject: "admin:1", Role: token.RoleAdmin}, nil
		},
	}

	var gotUserID string
	handler := AdminAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "admin:1" {
		t.Errorf("expected admin:1 in context, got %q", gotUserID)
	}
}

func TestMemberAuth_IgnoresAdminCookie(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			t.Error("validator should not see the admin cookie")
			return nil, nil
		},
	}

	handler := MemberAuth(validator)(okHandler(new(bool)))

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "admin-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without the member cookie, got %d", rec.Code)
	}
}

func TestMemberAuth_ValidToken(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return &token.Claims{Subject: "user:7", Role: token.RoleMember, Username: "ghostshell"}, nil
		},
	}

	var gotClaims *token.Claims
	handler := MemberAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.AddCookie(&http.Cookie{Name: MemberCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotClaims == nil || gotClaims.Username != "ghostshell" {
		t.Errorf("expected claims in context, got %+v", gotClaims)
	}
}

func TestOptionalMemberAuth_LetsAnonymousThrough(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			t.Error("validator should not run without a cookie")
			return nil, nil
		},
	}

	called := false
	handler := OptionalMemberAuth(validator)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/forum/topics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected anonymous request to pass through")
	}
}

func TestOptionalMemberAuth_PopulatesContext(t *testing.T) {
	validator := &mockValidator{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return &token.Claims{Subject: "user:7", Role: token.RoleMember}, nil
		},
	}

	var gotUserID string
	handler := OptionalMemberAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/forum/topics", nil)
	req.AddCookie(&http.Cookie{Name: MemberCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotUserID != "user:7" {
		t.Errorf("expected user:7 in context, got %q", gotUserID)
	}
}
