package token

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:     []byte("test-secret"),
		Issuer:     "test-issuer",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{Subject: "user:123"}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		Subject:   "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_IsAdmin(t *testing.T) {
	t.Parallel()
	admin := Claims{Role: RoleAdmin}
	member := Claims{Role: RoleMember}

	if !admin.IsAdmin() {
		t.Error("expected admin claims to report IsAdmin")
	}
	if member.IsAdmin() {
		t.Error("expected member claims to not report IsAdmin")
	}
}

// ============================================================================
// Sign/Validate Tests
// ============================================================================

func TestService_NewService_EmptySecret_ReturnsErr(t *testing.T) {
	t.Parallel()
	_, err := NewService(Config{Issuer: "x", Expiration: time.Minute})

	if err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestService_SignAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{
		Subject:  "user:abc",
		Role:     RoleMember,
		Email:    "test@example.com",
		Username: "tester",
	})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if len(strings.Split(tok, ".")) != 3 {
		t.Fatalf("expected compact three-part token, got %q", tok)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != "user:abc" {
		t.Errorf("expected subject user:abc, got %q", claims.Subject)
	}
	if claims.Role != RoleMember {
		t.Errorf("expected role %q, got %q", RoleMember, claims.Role)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %q", claims.Issuer)
	}
	if claims.ExpiresAt == 0 {
		t.Error("expected expiration to be stamped")
	}
}

func TestService_Validate_TamperedPayload_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{Subject: "user:abc", Role: RoleMember})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	parts := strings.Split(tok, ".")
	parts[1] = base64URLEncode([]byte(`{"sub":"user:other","role":"admin"}`))
	tampered := strings.Join(parts, ".")

	if _, err := svc.Validate(tampered); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Validate_WrongSecret_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	other, _ := NewService(Config{
		Secret:     []byte("different-secret"),
		Issuer:     "test-issuer",
		Expiration: 15 * time.Minute,
	})

	tok, err := svc.Sign(Claims{Subject: "user:abc"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := other.Validate(tok); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Validate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	other, _ := NewService(Config{
		Secret:     []byte("test-secret"),
		Issuer:     "other-issuer",
		Expiration: 15 * time.Minute,
	})

	tok, err := other.Sign(Claims{Subject: "user:abc"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Validate(tok); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_Validate_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{
		Subject:   "user:abc",
		ExpiresAt: time.Now().Add(-1 * time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Validate(tok); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestService_Validate_Garbage_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(tok); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
