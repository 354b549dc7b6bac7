package auth

import (
	"errors"
	"testing"

	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeUserRepo serves users from a map and counts FindByID calls so the
// tests can observe cache hits.
type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
	loads int
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	f.loads++
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserRepo) FindByUsername(string) (*model.User, error) {
	return nil, errors.New("unused")
}
func (f *fakeUserRepo) Create(*model.User) error               { return nil }
func (f *fakeUserRepo) Update(*model.User) error               { return nil }
func (f *fakeUserRepo) Delete(uuid.UUID) error                 { return nil }
func (f *fakeUserRepo) UpdatePassword(uuid.UUID, string) error { return nil }
func (f *fakeUserRepo) UpdatePermissions(uuid.UUID, []model.Permission) error {
	return nil
}
func (f *fakeUserRepo) FindAll() ([]model.User, error)             { return nil, nil }
func (f *fakeUserRepo) UpdateTokenVersion(uuid.UUID, string) error { return nil }
func (f *fakeUserRepo) UpdateLastSeen(uuid.UUID) error             { return nil }

func newFakeRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func standardUser(keys ...string) *model.User {
	u := &model.User{UserType: model.UserTypeStandard, IsActive: true}
	u.ID = uuid.New()
	for _, k := range keys {
		u.Permissions = append(u.Permissions, model.Permission{Key: k})
	}
	return u
}

func TestCheckReadsThroughOnce(t *testing.T) {
	user := standardUser("inventory.view")
	repo := newFakeRepo(user)
	cache := NewPermissionCache(repo)

	assert.True(t, cache.Check(user.ID, "inventory.view"))
	assert.False(t, cache.Check(user.ID, "inventory.adjust"))
	assert.True(t, cache.Check(user.ID, "inventory.view"))

	assert.Equal(t, 1, repo.loads, "snapshot should be loaded once and reused")
}

func TestCheckUnknownUser(t *testing.T) {
	cache := NewPermissionCache(newFakeRepo())
	assert.False(t, cache.Check(uuid.New(), "inventory.view"))
}

func TestInvalidateForcesReload(t *testing.T) {
	user := standardUser()
	repo := newFakeRepo(user)
	cache := NewPermissionCache(repo)

	assert.False(t, cache.Check(user.ID, "inventory.adjust"))

	// Grant lands in the store, then the cache is told.
	user.Permissions = append(user.Permissions, model.Permission{Key: "inventory.adjust"})
	cache.Invalidate(user.ID)

	assert.True(t, cache.Check(user.ID, "inventory.adjust"), "new grant must be visible after invalidation")
	assert.Equal(t, 2, repo.loads)
}

func TestDeactivationVisibleAfterInvalidate(t *testing.T) {
	user := standardUser("production.view")
	repo := newFakeRepo(user)
	cache := NewPermissionCache(repo)

	assert.True(t, cache.Check(user.ID, "production.view"))

	user.IsActive = false
	cache.Invalidate(user.ID)

	assert.False(t, cache.Check(user.ID, "production.view"))
}

func TestInvalidateAll(t *testing.T) {
	a := standardUser("a.one")
	b := standardUser("b.two")
	repo := newFakeRepo(a, b)
	cache := NewPermissionCache(repo)

	cache.Check(a.ID, "a.one")
	cache.Check(b.ID, "b.two")
	assert.Equal(t, 2, repo.loads)

	cache.InvalidateAll()
	cache.Check(a.ID, "a.one")
	cache.Check(b.ID, "b.two")
	assert.Equal(t, 4, repo.loads)
}

func TestSnapshotReturnsCachedUser(t *testing.T) {
	user := standardUser("x.y")
	cache := NewPermissionCache(newFakeRepo(user))

	got, err := cache.Snapshot(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}
