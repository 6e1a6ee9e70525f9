// Package middleware provides HTTP middleware for the RedLine API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, maintenance gating, and request
// processing.
//
// # Available Middleware
//
//   - AdminAuth / MemberAuth: cookie token validation per identity domain
//   - Maintenance: redirects page loads while maintenance mode is on
//   - RateLimit: request rate limiting per user/IP
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// The two identity domains carry separate cookies: admins authenticate
// with auth_token, forum members with user_token. A middleware for one
// domain ignores the other's cookie entirely.
//
// After authentication, handlers can access the account id:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns the authenticated account ID
//   - GetClaims(ctx): Returns the validated token claims
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
