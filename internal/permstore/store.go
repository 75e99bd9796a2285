// Package permstore holds the merged navigation-permission matrix for
// each browser session, in memory only. Permissions are session-scoped:
// they are re-fetched on login and do not survive a restart.
package permstore

import (
	"sync"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/ports"
)

// Store is an in-memory ports.PermissionStore. Matrices are value types,
// so Replace installs an independent snapshot and Snapshot hands out a
// copy: no caller can mutate another caller's view in place. Any change
// must go through another Replace.
type Store struct {
	mu       sync.RWMutex
	matrices map[string]rbac.NavigationPermissions
}

// New creates an empty permission store.
func New() *Store {
	return &Store{matrices: make(map[string]rbac.NavigationPermissions)}
}

var _ ports.PermissionStore = (*Store)(nil)

func (s *Store) Replace(sid string, nav rbac.NavigationPermissions) {
	if sid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matrices[sid] = nav
}

func (s *Store) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matrices, sid)
}

func (s *Store) Loaded(sid string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.matrices[sid]
	return ok
}

// Query reports whether the action is granted on the tab. No matrix
// loaded, unknown tab, and unknown action all mean denied, never an error.
func (s *Store) Query(sid string, tab rbac.Tab, action rbac.Action) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nav, ok := s.matrices[sid]
	if !ok {
		return false
	}
	return nav.Allows(tab, action)
}

func (s *Store) CanNavigate(sid string, tab rbac.Tab) bool {
	return s.Query(sid, tab, rbac.ActionRead)
}

func (s *Store) CanCreate(sid string, tab rbac.Tab) bool {
	return s.Query(sid, tab, rbac.ActionCreate)
}

func (s *Store) CanUpdate(sid string, tab rbac.Tab) bool {
	return s.Query(sid, tab, rbac.ActionUpdate)
}

func (s *Store) CanDelete(sid string, tab rbac.Tab) bool {
	return s.Query(sid, tab, rbac.ActionDelete)
}

func (s *Store) Snapshot(sid string) (rbac.NavigationPermissions, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nav, ok := s.matrices[sid]
	return nav, ok
}
