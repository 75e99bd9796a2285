// Package rbac contains domain types for the role-based navigation
// permission model: the closed tab set, per-tab action flags, permission
// grants, roles, and directory users. Types mirror the upstream directory
// API wire shapes.
package rbac

// Tab identifies one navigable section of the dashboard. The set is
// closed: every materialized permission matrix carries an explicit entry
// for each tab, so "absent" is unrepresentable.
type Tab string

const (
	TabHome         Tab = "home"
	TabContacts     Tab = "contacts"
	TabUsers        Tab = "users"
	TabOrganization Tab = "organization"
	TabProfile      Tab = "profile"
	TabIntegrations Tab = "integrations"
	TabWhatsApp     Tab = "whatsapp"
)

// Tabs returns the closed set of navigable tabs.
func Tabs() []Tab {
	return []Tab{
		TabHome,
		TabContacts,
		TabUsers,
		TabOrganization,
		TabProfile,
		TabIntegrations,
		TabWhatsApp,
	}
}

// Action is one of the four gated operations on a tab.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// TabPermissions holds the four action flags for one tab. The zero value
// denies everything, which is the default for tabs the upstream omits.
type TabPermissions struct {
	Read   bool `json:"p_read"`
	Create bool `json:"p_create"`
	Update bool `json:"p_update"`
	Delete bool `json:"p_delete"`
}

// Allows reports whether the given action is granted. Unknown actions are
// denied, never an error.
func (p TabPermissions) Allows(action Action) bool {
	switch action {
	case ActionRead:
		return p.Read
	case ActionCreate:
		return p.Create
	case ActionUpdate:
		return p.Update
	case ActionDelete:
		return p.Delete
	default:
		return false
	}
}

// union returns the per-action OR of two flag sets.
func (p TabPermissions) union(o TabPermissions) TabPermissions {
	return TabPermissions{
		Read:   p.Read || o.Read,
		Create: p.Create || o.Create,
		Update: p.Update || o.Update,
		Delete: p.Delete || o.Delete,
	}
}

// NavigationPermissions is the full per-tab capability table for a
// session. It is a fixed-size value type: copying it is cheap and yields
// an independent snapshot, so a published matrix cannot be mutated
// through an aliased reference. Tabs missing from the upstream payload
// decode to the zero TabPermissions (deny by default).
type NavigationPermissions struct {
	Home         TabPermissions `json:"home_tab"`
	Contacts     TabPermissions `json:"contacts_tab"`
	Users        TabPermissions `json:"users_tab"`
	Organization TabPermissions `json:"organization_tab"`
	Profile      TabPermissions `json:"profile_tab"`
	Integrations TabPermissions `json:"integrations_tab"`
	WhatsApp     TabPermissions `json:"whatsapp_tab"`
}

// Tab returns the flags for the named tab. Unknown tabs deny everything.
func (n NavigationPermissions) Tab(tab Tab) TabPermissions {
	switch tab {
	case TabHome:
		return n.Home
	case TabContacts:
		return n.Contacts
	case TabUsers:
		return n.Users
	case TabOrganization:
		return n.Organization
	case TabProfile:
		return n.Profile
	case TabIntegrations:
		return n.Integrations
	case TabWhatsApp:
		return n.WhatsApp
	default:
		return TabPermissions{}
	}
}

// Allows reports whether the action is granted on the tab. Unknown
// tab/action combinations are denied, never an error.
func (n NavigationPermissions) Allows(tab Tab, action Action) bool {
	return n.Tab(tab).Allows(action)
}

// Merge folds the grants' navigation matrices into one via per-tab,
// per-action logical OR, seeded from the all-false matrix. The merge is
// monotonic: adding a grant can only add capabilities.
func Merge(grants ...Grant) NavigationPermissions {
	var merged NavigationPermissions
	for _, g := range grants {
		nav := g.Navigation
		merged.Home = merged.Home.union(nav.Home)
		merged.Contacts = merged.Contacts.union(nav.Contacts)
		merged.Users = merged.Users.union(nav.Users)
		merged.Organization = merged.Organization.union(nav.Organization)
		merged.Profile = merged.Profile.union(nav.Profile)
		merged.Integrations = merged.Integrations.union(nav.Integrations)
		merged.WhatsApp = merged.WhatsApp.union(nav.WhatsApp)
	}
	return merged
}

// Grant is a fetched permission record attached to a role.
type Grant struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	FeatureTag  string                `json:"feature_tag"`
	Navigation  NavigationPermissions `json:"navigation"`
}

// Role is a directory role owning zero or more permission grants.
type Role struct {
	ID            string   `json:"id"`
	OrgID         string   `json:"org_id"`
	Name          string   `json:"name"`
	IsDefault     bool     `json:"is_default"`
	PermissionIDs []string `json:"permission_ids"`
}

// User is a directory user record. A user owns exactly one role.
type User struct {
	UID                     string   `json:"uid"`
	OrgID                   string   `json:"org_id"`
	Name                    string   `json:"name"`
	Email                   string   `json:"email"`
	RoleID                  string   `json:"role_id"`
	Status                  string   `json:"status"`
	IsVerified              bool     `json:"is_verified"`
	AuthSource              string   `json:"auth_source"`
	AssignedWhatsAppNumbers []string `json:"assigned_whatsapp_numbers"`
}

// UserPage is one page of a paginated user listing.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
