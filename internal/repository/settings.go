package repository

import (
	"context"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// settingsRecordID is the fixed id of the singleton settings document.
const settingsRecordID = "site_settings:main"

// SettingsRepository handles the singleton site settings document
type SettingsRepository struct {
	db database.Database
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db database.Database) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings document, creating it with defaults on first
// read. The UPSERT against the fixed record id coalesces each field, so
// concurrent first reads converge on one document and later reads never
// clobber stored values.
func (r *SettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	query := `
		UPSERT type::record($id) SET
			site_name = site_name ?? $site_name,
			site_name_accent = site_name_accent ?? $site_name_accent,
			logo_url = logo_url ?? "",
			maintenance_mode = maintenance_mode ?? false,
			maintenance_message = maintenance_message ?? $maintenance_message,
			updated_on = updated_on ?? time::now()
		RETURN AFTER
	`

	vars := map[string]interface{}{
		"id":                  settingsRecordID,
		"site_name":           model.DefaultSiteName,
		"site_name_accent":    model.DefaultSiteNameAccent,
		"maintenance_message": model.DefaultMaintenanceMessage,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return nil, err
	}
	return parseSettings(data), nil
}

// Update applies a partial update and returns the resulting document;
// nil fields are left untouched.
func (r *SettingsRepository) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.SiteSettings, error) {
	sets := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{"id": settingsRecordID}

	if req.SiteName != nil {
		sets = append(sets, "site_name = $site_name")
		vars["site_name"] = *req.SiteName
	}
	if req.SiteNameAccent != nil {
		sets = append(sets, "site_name_accent = $site_name_accent")
		vars["site_name_accent"] = *req.SiteNameAccent
	}
	if req.LogoURL != nil {
		sets = append(sets, "logo_url = $logo_url")
		vars["logo_url"] = *req.LogoURL
	}
	if req.MaintenanceMode != nil {
		sets = append(sets, "maintenance_mode = $maintenance_mode")
		vars["maintenance_mode"] = *req.MaintenanceMode
	}
	if req.MaintenanceMessage != nil {
		sets = append(sets, "maintenance_message = $maintenance_message")
		vars["maintenance_message"] = *req.MaintenanceMessage
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(sets, ", ") + ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return nil, err
	}
	return parseSettings(data), nil
}

func parseSettings(data map[string]interface{}) *model.SiteSettings {
	return &model.SiteSettings{
		ID:                 extractRecordID(data["id"]),
		SiteName:           getString(data, "site_name"),
		SiteNameAccent:     getString(data, "site_name_accent"),
		LogoURL:            getString(data, "logo_url"),
		MaintenanceMode:    getBool(data, "maintenance_mode"),
		MaintenanceMessage: getString(data, "maintenance_message"),
		UpdatedOn:          getTime(data, "updated_on"),
	}
}
