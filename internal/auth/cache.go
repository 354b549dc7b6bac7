// Package auth provides the permission-check layer between the HTTP surface
// and the user store. The decision itself is the pure model.HasPermission
// predicate; this package only caches the grant snapshots it feeds in.
package auth

import (
	"sync"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"

	"github.com/google/uuid"
)

// PermissionCache is a read-through cache of per-user grant snapshots keyed
// by user id. Entries are invalidated explicitly after any user or grant
// mutation; there is no TTL, a stale entry lives until someone writes.
type PermissionCache struct {
	users repository.UserRepository

	mu      sync.RWMutex
	entries map[uuid.UUID]*model.User
}

func NewPermissionCache(users repository.UserRepository) *PermissionCache {
	return &PermissionCache{
		users:   users,
		entries: make(map[uuid.UUID]*model.User),
	}
}

// Check reports whether the user may perform the action identified by key.
// The user snapshot (type, active flag, granted set) is loaded on first use
// and reused until invalidated. A missing user is a plain false, never an
// error surfaced to the caller chain.
func (c *PermissionCache) Check(userID uuid.UUID, key string) bool {
	user, err := c.snapshot(userID)
	if err != nil {
		return false
	}
	return model.HasPermission(user, key, user.Permissions)
}

// Snapshot returns the cached user record, loading it if needed.
func (c *PermissionCache) Snapshot(userID uuid.UUID) (*model.User, error) {
	return c.snapshot(userID)
}

func (c *PermissionCache) snapshot(userID uuid.UUID) (*model.User, error) {
	c.mu.RLock()
	user, ok := c.entries[userID]
	c.mu.RUnlock()
	if ok {
		return user, nil
	}

	user, err := c.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[userID] = user
	c.mu.Unlock()
	return user, nil
}

// Invalidate drops one user's snapshot. Must be called after any mutation of
// that user's grants, type, or active flag.
func (c *PermissionCache) Invalidate(userID uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

// InvalidateAll drops every snapshot, used after bulk permission changes.
func (c *PermissionCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[uuid.UUID]*model.User)
	c.mu.Unlock()
}
