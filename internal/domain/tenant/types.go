// Package tenant contains domain types for organization (tenant) records
// and the partial update payloads accepted by the upstream settings,
// features, and assets endpoints.
package tenant

// Assets holds the tenant's brand asset slots.
type Assets struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Tertiary  string `json:"tertiary,omitempty"`
}

// Features holds the tenant's feature toggles.
type Features struct {
	Analytics *bool   `json:"analytics,omitempty"`
	APIs      string  `json:"apis,omitempty"`
	Assets    *Assets `json:"assets,omitempty"`
}

// Tenant is an organization record as returned by the directory API.
type Tenant struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"tenant_name"`
	PlanID                 string    `json:"plan_id"`
	MaxUsersLimit          int       `json:"max_users_limit"`
	CurrentUsersCount      int       `json:"current_users_count"`
	WhatsAppNumber         string    `json:"whatsapp_number"`
	IsAPIEnabled           bool      `json:"is_api_enabled"`
	APIKey                 string    `json:"api_key"`
	ChatSupervisionEnabled bool      `json:"chat_supervision_enabled"`
	Features               *Features `json:"features,omitempty"`
}

// SettingsPatch is a partial update of tenant settings. Nil/empty fields
// are omitted from the PATCH body so the upstream leaves them untouched.
type SettingsPatch struct {
	Name                   string `json:"tenant_name,omitempty"`
	PlanID                 string `json:"plan_id,omitempty"`
	MaxUsersLimit          *int   `json:"max_users_limit,omitempty"`
	WhatsAppNumber         string `json:"whatsapp_number,omitempty"`
	IsAPIEnabled           *bool  `json:"is_api_enabled,omitempty"`
	ChatSupervisionEnabled *bool  `json:"chat_supervision_enabled,omitempty"`
}

// FeaturesPatch is a partial update of tenant feature toggles.
type FeaturesPatch struct {
	Analytics *bool   `json:"analytics,omitempty"`
	APIs      string  `json:"apis,omitempty"`
	Assets    *Assets `json:"assets,omitempty"`
}

// AssetsPatch is a partial update of the tenant's brand assets.
type AssetsPatch struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Tertiary  string `json:"tertiary,omitempty"`
}
