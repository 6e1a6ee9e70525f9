package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKey       = errors.New("invalid key")
)

// Roles carried in the token. Each identity domain issues its own role;
// a member token never authorizes back office access and vice versa.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Claims represents the signed token payload
type Claims struct {
	Issuer    string `json:"iss,omitempty"`
	Subject   string `json:"sub,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`

	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// IsAdmin returns true if the claims were issued by the back office domain
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// IsMember returns true if the claims were issued by the member domain
func (c *Claims) IsMember() bool {
	return c.Role == RoleMember
}

// Valid checks the time-based claims
func (c *Claims) Valid() error {
	if c.ExpiresAt != 0 && time.Now().Unix() > c.ExpiresAt {
		return ErrTokenExpired
	}
	return nil
}

// Service signs and validates tokens with a shared secret
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// Config holds token service configuration
type Config struct {
	Secret     []byte
	Issuer     string
	Expiration time.Duration
}

// NewService creates a new token service
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrInvalidKey
	}
	return &Service{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		expiration: cfg.Expiration,
	}, nil
}

// Sign creates a signed token from the claims. Issuer and timestamps are
// stamped here; a zero ExpiresAt gets the configured expiration.
func (s *Service) Sign(claims Claims) (string, error) {
	now := time.Now()
	claims.Issuer = s.issuer
	claims.IssuedAt = now.Unix()
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = now.Add(s.expiration).Unix()
	}

	header := map[string]string{
		"alg": "HS256",
		"typ": "JWT",
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	message := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return message + "." + base64URLEncode(s.sign(message)), nil
}

// Validate validates a token and returns its claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	message := parts[0] + "." + parts[1]
	signature, err := base64URLDecode(parts[2])
	if err != nil {
		return nil, ErrInvalidToken
	}

	expected := s.sign(message)
	if subtle.ConstantTimeCompare(signature, expected) != 1 {
		return nil, ErrInvalidSignature
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if err := claims.Valid(); err != nil {
		return nil, err
	}

	if claims.Issuer != s.issuer {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// Expiration returns the configured token lifetime
func (s *Service) Expiration() time.Duration {
	return s.expiration
}

func (s *Service) sign(message string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
