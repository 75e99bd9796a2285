package rbac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allActions() []Action {
	return []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
}

func TestNavigationPermissions_DenyByDefault(t *testing.T) {
	var nav NavigationPermissions

	for _, tab := range Tabs() {
		for _, action := range allActions() {
			assert.False(t, nav.Allows(tab, action), "zero matrix must deny %s/%s", tab, action)
		}
	}

	// Unknown tab and unknown action deny rather than error.
	assert.False(t, nav.Allows(Tab("billing"), ActionRead))
	assert.False(t, nav.Allows(TabUsers, Action("export")))
}

func TestNavigationPermissions_DecodeMissingTabs(t *testing.T) {
	// Upstream payload granting only the users tab; every other tab is
	// absent and must decode to all-false.
	payload := `{"users_tab":{"p_read":true,"p_create":false,"p_update":true,"p_delete":false}}`

	var nav NavigationPermissions
	require.NoError(t, json.Unmarshal([]byte(payload), &nav))

	assert.True(t, nav.Allows(TabUsers, ActionRead))
	assert.True(t, nav.Allows(TabUsers, ActionUpdate))
	assert.False(t, nav.Allows(TabUsers, ActionCreate))
	assert.False(t, nav.Allows(TabHome, ActionRead))
	assert.False(t, nav.Allows(TabWhatsApp, ActionDelete))
}

func TestMerge_ORSemantics(t *testing.T) {
	grant1 := Grant{
		ID:         "perm-1",
		Navigation: NavigationPermissions{Users: TabPermissions{Read: true}},
	}
	grant2 := Grant{
		ID:         "perm-2",
		Navigation: NavigationPermissions{Users: TabPermissions{Create: true}},
	}

	merged := Merge(grant1, grant2)

	assert.Equal(t, TabPermissions{Read: true, Create: true}, merged.Users)
	for _, tab := range Tabs() {
		if tab == TabUsers {
			continue
		}
		assert.Equal(t, TabPermissions{}, merged.Tab(tab), "tab %s should stay all-false", tab)
	}
}

func TestMerge_CommutativeAndIdempotent(t *testing.T) {
	g1 := Grant{Navigation: NavigationPermissions{
		Home:     TabPermissions{Read: true},
		Contacts: TabPermissions{Read: true, Delete: true},
	}}
	g2 := Grant{Navigation: NavigationPermissions{
		Contacts: TabPermissions{Create: true},
		Profile:  TabPermissions{Read: true, Update: true},
	}}

	assert.Equal(t, Merge(g1, g2), Merge(g2, g1), "merge must be commutative")
	assert.Equal(t, Merge(g1), Merge(g1, g1), "merging the same grant twice must equal once")
}

func TestMerge_Monotonic(t *testing.T) {
	base := Grant{Navigation: NavigationPermissions{Home: TabPermissions{Read: true}}}
	extra := Grant{Navigation: NavigationPermissions{WhatsApp: TabPermissions{Read: true}}}

	before := Merge(base)
	after := Merge(base, extra)

	for _, tab := range Tabs() {
		for _, action := range allActions() {
			if before.Allows(tab, action) {
				assert.True(t, after.Allows(tab, action),
					"adding a grant removed %s/%s", tab, action)
			}
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	merged := Merge()
	assert.Equal(t, NavigationPermissions{}, merged)
}

func TestTabPermissions_Allows(t *testing.T) {
	p := TabPermissions{Read: true, Update: true}

	assert.True(t, p.Allows(ActionRead))
	assert.False(t, p.Allows(ActionCreate))
	assert.True(t, p.Allows(ActionUpdate))
	assert.False(t, p.Allows(ActionDelete))
	assert.False(t, p.Allows(Action("unknown")))
}
