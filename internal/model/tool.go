package model

import "time"

// ToolCategory classifies an entry in the tools directory.
type ToolCategory string

// The fixed tool taxonomy. Category values outside this set are rejected.
const (
	ToolCategoryReconnaissance   ToolCategory = "Reconnaissance"
	ToolCategoryScanning         ToolCategory = "Scanning"
	ToolCategoryExploitation     ToolCategory = "Exploitation"
	ToolCategoryPostExploitation ToolCategory = "Post-Exploitation"
	ToolCategoryPasswordAttacks  ToolCategory = "Password Attacks"
	ToolCategoryWebApplication   ToolCategory = "Web Application"
	ToolCategoryNetworkAnalysis  ToolCategory = "Network Analysis"
	ToolCategoryForensics        ToolCategory = "Forensics"
	ToolCategoryOther            ToolCategory = "Other"
)

// ToolCategories lists every valid category in display order.
var ToolCategories = []ToolCategory{
	ToolCategoryReconnaissance,
	ToolCategoryScanning,
	ToolCategoryExploitation,
	ToolCategoryPostExploitation,
	ToolCategoryPasswordAttacks,
	ToolCategoryWebApplication,
	ToolCategoryNetworkAnalysis,
	ToolCategoryForensics,
	ToolCategoryOther,
}

// IsValid reports whether the category is one of the fixed values.
func (c ToolCategory) IsValid() bool {
	for _, v := range ToolCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Tool is an entry in the curated security tools directory.
type Tool struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     ToolCategory `json:"category"`
	ExternalLink string       `json:"external_link"`
	Icon         string       `json:"icon,omitempty"`
	Featured     bool         `json:"featured"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

// ToolFilter is the typed query specification for tool listings.
type ToolFilter struct {
	Category     ToolCategory
	FeaturedOnly bool
}

// CreateToolRequest represents a request to add a tool.
type CreateToolRequest struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     ToolCategory `json:"category"`
	ExternalLink string       `json:"external_link"`
	Icon         string       `json:"icon,omitempty"`
	Featured     bool         `json:"featured"`
}

// UpdateToolRequest represents a partial tool update.
type UpdateToolRequest struct {
	Name         *string       `json:"name,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Category     *ToolCategory `json:"category,omitempty"`
	ExternalLink *string       `json:"external_link,omitempty"`
	Icon         *string       `json:"icon,omitempty"`
	Featured     *bool         `json:"featured,omitempty"`
}
