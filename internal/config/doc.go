// Package config manages application configuration for the RedLine API.
//
// The config package loads and validates configuration from environment
// variables, with a .env file loaded first when present. All configuration
// is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: token signing and cookie settings
//   - CloudinaryConfig: image store credentials
//   - RateLimitConfig: request rate limiting
//   - SettingsConfig: site settings cache behavior
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT     - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE - SurrealDB namespace and database
//	DB_USER / DB_PASSWORD - Database credentials
//	JWT_SECRET            - Token signing secret (required in production)
//	TOKEN_TTL             - Session token lifetime (default: 168h)
//	CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY / CLOUDINARY_API_SECRET
//	SETTINGS_CACHE_TTL    - Maintenance flag cache (default: 30s)
package config
