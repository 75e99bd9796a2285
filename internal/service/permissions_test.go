package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/mocks"
	"github.com/atendo-hq/console-api/internal/permstore"
)

func newTestPermissionService(dir *mocks.MockDirectory, store *permstore.Store) *PermissionService {
	return NewPermissionService(PermissionServiceOptions{
		Users:  dir,
		Roles:  dir,
		Grants: dir,
		Store:  store,
	})
}

var subject = PermissionSubject{OrgID: "org-1", UserID: "user-1", Token: "tok"}

func TestPermissionService_Initialize_MergesGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().User(gomock.Any(), "tok", "org-1", "user-1").
		Return(rbac.User{UID: "user-1", RoleID: "role-1"}, nil)
	dir.EXPECT().Role(gomock.Any(), "tok", "org-1", "role-1").
		Return(rbac.Role{ID: "role-1", PermissionIDs: []string{"perm-1", "perm-2"}}, nil)
	dir.EXPECT().Permission(gomock.Any(), "tok", "perm-1").
		Return(rbac.Grant{ID: "perm-1", Navigation: rbac.NavigationPermissions{
			Users: rbac.TabPermissions{Read: true},
		}}, nil)
	dir.EXPECT().Permission(gomock.Any(), "tok", "perm-2").
		Return(rbac.Grant{ID: "perm-2", Navigation: rbac.NavigationPermissions{
			Users: rbac.TabPermissions{Create: true},
			Home:  rbac.TabPermissions{Read: true},
		}}, nil)

	store := permstore.New()
	svc := newTestPermissionService(dir, store)

	require.NoError(t, svc.Initialize(context.Background(), "sid-1", subject))

	// Grants combine by OR across the whole matrix.
	assert.True(t, store.CanNavigate("sid-1", rbac.TabUsers))
	assert.True(t, store.CanCreate("sid-1", rbac.TabUsers))
	assert.True(t, store.CanNavigate("sid-1", rbac.TabHome))
	assert.False(t, store.CanUpdate("sid-1", rbac.TabUsers))
	assert.False(t, store.CanNavigate("sid-1", rbac.TabContacts))
}

func TestPermissionService_Initialize_ValidatesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestPermissionService(mocks.NewMockDirectory(ctrl), permstore.New())

	err := svc.Initialize(context.Background(), "sid-1", PermissionSubject{OrgID: "org-1", UserID: "user-1"})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.Initialize(context.Background(), "sid-1", PermissionSubject{Token: "tok"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPermissionService_Initialize_UserWithoutRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().User(gomock.Any(), "tok", "org-1", "user-1").
		Return(rbac.User{UID: "user-1"}, nil)

	store := permstore.New()
	svc := newTestPermissionService(dir, store)

	err := svc.Initialize(context.Background(), "sid-1", subject)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.False(t, store.Loaded("sid-1"))
}

func TestPermissionService_Initialize_RoleWithoutGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().User(gomock.Any(), "tok", "org-1", "user-1").
		Return(rbac.User{UID: "user-1", RoleID: "role-1"}, nil)
	dir.EXPECT().Role(gomock.Any(), "tok", "org-1", "role-1").
		Return(rbac.Role{ID: "role-1"}, nil)

	store := permstore.New()
	svc := newTestPermissionService(dir, store)

	err := svc.Initialize(context.Background(), "sid-1", subject)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.False(t, store.Loaded("sid-1"))
}

func TestPermissionService_Initialize_GrantFetchFailureLeavesStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().User(gomock.Any(), "tok", "org-1", "user-1").
		Return(rbac.User{UID: "user-1", RoleID: "role-1"}, nil)
	dir.EXPECT().Role(gomock.Any(), "tok", "org-1", "role-1").
		Return(rbac.Role{ID: "role-1", PermissionIDs: []string{"perm-1", "perm-2"}}, nil)
	dir.EXPECT().Permission(gomock.Any(), "tok", "perm-1").
		Return(rbac.Grant{ID: "perm-1", Navigation: rbac.NavigationPermissions{
			Users: rbac.TabPermissions{Read: true, Create: true, Update: true, Delete: true},
		}}, nil).AnyTimes()
	dir.EXPECT().Permission(gomock.Any(), "tok", "perm-2").
		Return(rbac.Grant{}, apperrors.Upstream("permission service unavailable"))

	store := permstore.New()
	// A previous login published a matrix for this session.
	store.Replace("sid-1", rbac.NavigationPermissions{Home: rbac.TabPermissions{Read: true}})

	svc := newTestPermissionService(dir, store)

	err := svc.Initialize(context.Background(), "sid-1", subject)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))

	// No partial publish: the prior matrix is still the live one.
	assert.True(t, store.CanNavigate("sid-1", rbac.TabHome))
	assert.False(t, store.CanNavigate("sid-1", rbac.TabUsers))
}

func TestPermissionService_Initialize_NilStoreIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().User(gomock.Any(), "tok", "org-1", "user-1").
		Return(rbac.User{UID: "user-1", RoleID: "role-1"}, nil)
	dir.EXPECT().Role(gomock.Any(), "tok", "org-1", "role-1").
		Return(rbac.Role{ID: "role-1", PermissionIDs: []string{"perm-1"}}, nil)
	dir.EXPECT().Permission(gomock.Any(), "tok", "perm-1").
		Return(rbac.Grant{ID: "perm-1"}, nil)

	svc := NewPermissionService(PermissionServiceOptions{
		Users:  dir,
		Roles:  dir,
		Grants: dir,
	})

	assert.NoError(t, svc.Initialize(context.Background(), "sid-1", subject))
}

func TestPermissionService_Reset(t *testing.T) {
	store := permstore.New()
	store.Replace("sid-1", rbac.NavigationPermissions{Home: rbac.TabPermissions{Read: true}})

	svc := NewPermissionService(PermissionServiceOptions{Store: store})
	svc.Reset("sid-1")

	assert.False(t, store.Loaded("sid-1"))
}
