package permstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
)

func TestStore_DenyWhenNotLoaded(t *testing.T) {
	store := New()

	assert.False(t, store.Loaded("sid-1"))
	for _, tab := range rbac.Tabs() {
		assert.False(t, store.CanNavigate("sid-1", tab))
		assert.False(t, store.CanCreate("sid-1", tab))
		assert.False(t, store.CanUpdate("sid-1", tab))
		assert.False(t, store.CanDelete("sid-1", tab))
	}
}

func TestStore_ReplaceAndQuery(t *testing.T) {
	store := New()
	store.Replace("sid-1", rbac.NavigationPermissions{
		Users: rbac.TabPermissions{Read: true, Create: true},
	})

	assert.True(t, store.Loaded("sid-1"))
	assert.True(t, store.CanNavigate("sid-1", rbac.TabUsers))
	assert.True(t, store.CanCreate("sid-1", rbac.TabUsers))
	assert.False(t, store.CanUpdate("sid-1", rbac.TabUsers))
	assert.False(t, store.CanDelete("sid-1", rbac.TabUsers))
	assert.False(t, store.CanNavigate("sid-1", rbac.TabHome))

	// Unknown tab/action combinations deny rather than error.
	assert.False(t, store.Query("sid-1", rbac.Tab("billing"), rbac.ActionRead))
	assert.False(t, store.Query("sid-1", rbac.TabUsers, rbac.Action("export")))

	// Other sessions are unaffected.
	assert.False(t, store.Loaded("sid-2"))
	assert.False(t, store.CanNavigate("sid-2", rbac.TabUsers))
}

func TestStore_ReplaceDiscardsPrevious(t *testing.T) {
	store := New()
	store.Replace("sid-1", rbac.NavigationPermissions{Users: rbac.TabPermissions{Read: true}})
	store.Replace("sid-1", rbac.NavigationPermissions{Home: rbac.TabPermissions{Read: true}})

	assert.True(t, store.CanNavigate("sid-1", rbac.TabHome))
	assert.False(t, store.CanNavigate("sid-1", rbac.TabUsers))
}

func TestStore_Clear(t *testing.T) {
	store := New()
	store.Replace("sid-1", rbac.NavigationPermissions{Users: rbac.TabPermissions{Read: true}})
	store.Clear("sid-1")

	assert.False(t, store.Loaded("sid-1"))
	assert.False(t, store.CanNavigate("sid-1", rbac.TabUsers))

	// Clearing an absent session is a no-op.
	store.Clear("sid-never")
}

func TestStore_SnapshotIsIndependentCopy(t *testing.T) {
	store := New()
	store.Replace("sid-1", rbac.NavigationPermissions{Users: rbac.TabPermissions{Read: true}})

	snap, ok := store.Snapshot("sid-1")
	assert.True(t, ok)
	assert.True(t, snap.Users.Read)

	// Mutating the snapshot must not change the stored matrix.
	snap.Users.Read = false
	snap.Users.Delete = true

	assert.True(t, store.CanNavigate("sid-1", rbac.TabUsers))
	assert.False(t, store.CanDelete("sid-1", rbac.TabUsers))
}

func TestStore_LoadedAllFalseMatrixStillDenies(t *testing.T) {
	store := New()
	store.Replace("sid-1", rbac.NavigationPermissions{})

	// Distinct from "none loaded", but behaviorally identical for queries.
	assert.True(t, store.Loaded("sid-1"))
	for _, tab := range rbac.Tabs() {
		assert.False(t, store.CanNavigate("sid-1", tab))
	}
}
