package model

import "time"

// SiteSettings is the singleton configuration document. It lives under a
// fixed record id so the read-side auto-create is an idempotent upsert
// rather than a racy find-then-insert.
type SiteSettings struct {
	ID                 string    `json:"id"`
	SiteName           string    `json:"site_name"`
	SiteNameAccent     string    `json:"site_name_accent"`
	LogoURL            string    `json:"logo_url,omitempty"`
	MaintenanceMode    bool      `json:"maintenance_mode"`
	MaintenanceMessage string    `json:"maintenance_message"`
	UpdatedOn          time.Time `json:"updated_on"`
}

// Defaults applied when the settings document is first created.
const (
	DefaultSiteName           = "Red"
	DefaultSiteNameAccent     = "Line"
	DefaultMaintenanceMessage = "Site şu anda bakım modundadır. Lütfen daha sonra tekrar deneyin."
)

// UpdateSettingsRequest represents a partial settings update.
type UpdateSettingsRequest struct {
	SiteName           *string `json:"site_name,omitempty"`
	SiteNameAccent     *string `json:"site_name_accent,omitempty"`
	LogoURL            *string `json:"logo_url,omitempty"`
	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty"`
	MaintenanceMessage *string `json:"maintenance_message,omitempty"`
}
