// Package model defines the domain types for the Redline platform.
//
// Entities are plain structs persisted through the repository layer:
// users and admins (two separate identity domains), the forum taxonomy
// (categories with embedded subcategories, topics, replies), blog posts,
// the curated tools directory, hero carousel slides, and the singleton
// site settings document.
//
// The package also defines the ProblemDetails error envelope used by all
// HTTP responses and the request payloads accepted by the handlers.
package model
