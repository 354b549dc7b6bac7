package service

import (
	"errors"
	"testing"

	"go-glassfloor-ws/internal/auth"
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves one user and lets tests inject an Update failure.
type stubUserRepo struct {
	user      *model.User
	updateErr error
}

func (s *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		copied := *s.user
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (s *stubUserRepo) FindByUsername(username string) (*model.User, error) {
	if s.user != nil && s.user.Username == username {
		copied := *s.user
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (s *stubUserRepo) Create(*model.User) error { return nil }
func (s *stubUserRepo) Update(*model.User) error { return s.updateErr }
func (s *stubUserRepo) Delete(uuid.UUID) error   { return nil }
func (s *stubUserRepo) UpdatePassword(uuid.UUID, string) error {
	return nil
}
func (s *stubUserRepo) UpdatePermissions(uuid.UUID, []model.Permission) error {
	return nil
}
func (s *stubUserRepo) FindAll() ([]model.User, error)             { return nil, nil }
func (s *stubUserRepo) UpdateTokenVersion(uuid.UUID, string) error { return nil }
func (s *stubUserRepo) UpdateLastSeen(uuid.UUID) error             { return nil }

type stubPermissionRepo struct{}

func (stubPermissionRepo) FindByKey(string) (*model.Permission, error) { return nil, nil }
func (stubPermissionRepo) FindByKeys(keys []string) ([]model.Permission, error) {
	permissions := make([]model.Permission, len(keys))
	for i, k := range keys {
		permissions[i] = model.Permission{Key: k}
	}
	return permissions, nil
}
func (stubPermissionRepo) FindAll() ([]model.Permission, error) { return nil, nil }
func (stubPermissionRepo) Create(*model.Permission) error       { return nil }
func (stubPermissionRepo) SeedDefaults() error                  { return nil }

func TestUpdateUserPermissionsSurfacesUpdateFailure(t *testing.T) {
	user := &model.User{Username: "kemal", UserType: model.UserTypeStandard, IsActive: true}
	user.ID = uuid.New()

	repo := &stubUserRepo{user: user, updateErr: errors.New("connection reset")}
	svc := NewUserService(repo, stubPermissionRepo{}, auth.NewPermissionCache(repo))

	_, err := svc.UpdateUserPermissions(user.ID, []string{"inventory.view"}, "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUpdateUserPermissionsUnknownUser(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo, stubPermissionRepo{}, auth.NewPermissionCache(repo))

	_, err := svc.UpdateUserPermissions(uuid.New(), []string{"inventory.view"}, "u-1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
