package service

import (
	"errors"
	"fmt"

	"go-glassfloor-ws/internal/auth"
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrUsernameExists = errors.New("username already exists")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error)
	DeleteUser(userID uuid.UUID) error
	UpdateUserPermissions(userID uuid.UUID, permissionKeys []string, updaterID string) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Username       string   `json:"username" validate:"required"`
	Password       string   `json:"password" validate:"required,min=6"`
	Email          string   `json:"email" validate:"omitempty,email"`
	FullName       string   `json:"full_name" validate:"required"`
	UserType       string   `json:"user_type" validate:"omitempty,oneof=Master Standard"`
	PermissionKeys []string `json:"permission_keys"`
}

type UpdateUserRequest struct {
	Username string  `json:"username" validate:"required"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	Email    string  `json:"email" validate:"omitempty,email"`
	FullName string  `json:"full_name" validate:"required"`
	UserType string  `json:"user_type" validate:"omitempty,oneof=Master Standard"`
	IsActive *bool   `json:"is_active"`
}

type userService struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
	permCache      *auth.PermissionCache
}

func NewUserService(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository, permCache *auth.PermissionCache) UserService {
	return &userService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		permCache:      permCache,
	}
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.userRepo.FindByUsername(req.Username)
	if existing != nil {
		return nil, ErrUsernameExists
	}

	userType := req.UserType
	if userType == "" {
		userType = model.UserTypeStandard
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		UserType: userType,
		IsActive: true,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// Initial grants. A Master user passes every check regardless, but the
	// grant rows are still stored so demoting them later keeps something.
	if len(req.PermissionKeys) > 0 {
		permissions, err := s.permissionRepo.FindByKeys(req.PermissionKeys)
		if err != nil {
			return nil, errors.New("failed to resolve permissions")
		}
		user.Permissions = permissions
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Username != user.Username {
		existing, _ := s.userRepo.FindByUsername(req.Username)
		if existing != nil {
			return nil, ErrUsernameExists
		}
	}

	user.Username = req.Username
	user.Email = req.Email
	user.FullName = req.FullName
	if req.UserType != "" {
		user.UserType = req.UserType
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedBy = updaterID

	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Type or active-flag changes alter permission outcomes immediately.
	s.permCache.Invalidate(userID)

	return s.userRepo.FindByID(userID)
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}
	s.permCache.Invalidate(userID)
	return nil
}

func (s *userService) UpdateUserPermissions(userID uuid.UUID, permissionKeys []string, updaterID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	permissions, err := s.permissionRepo.FindByKeys(permissionKeys)
	if err != nil {
		return nil, errors.New("failed to resolve permissions")
	}

	if err := s.userRepo.UpdatePermissions(userID, permissions); err != nil {
		return nil, err
	}

	user.UpdatedBy = updaterID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// The cached grant snapshot is stale the moment grants change.
	s.permCache.Invalidate(userID)

	return s.userRepo.FindByID(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}
