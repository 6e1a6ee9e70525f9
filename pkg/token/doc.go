// Package token provides compact HMAC-signed session tokens.
//
// Tokens follow the JWT compact serialization with an HS256 signature
// and carry the account id plus a role marking which identity domain
// issued them (admin back office or forum member).
//
// # Signing
//
//	svc := token.NewService(token.Config{
//	    Secret:     []byte("secret-key"),
//	    Issuer:     "redline",
//	    Expiration: 7 * 24 * time.Hour,
//	})
//
//	tok, err := svc.Sign(token.Claims{Subject: adminID, Role: token.RoleAdmin})
//
// # Validation
//
//	claims, err := svc.Validate(tok)
//	if err != nil {
//	    // invalid, expired, or wrong-issuer token
//	}
package token
