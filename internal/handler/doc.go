// Package handler provides HTTP request handlers for the RedLine API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct encapsulates the dependencies needed to serve requests for a
// specific feature area (authentication, forum, blog, tools, hero slides, settings).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Authentication
//
// Protected endpoints rely on the cookie middleware: the admin back office
// authenticates with the auth_token cookie, forum members with user_token.
// The middleware puts the account id in the request context, available via
// middleware.GetUserID(r.Context()).
package handler
