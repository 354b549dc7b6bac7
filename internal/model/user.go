package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User types. A Master user bypasses every discrete permission check;
// everyone else is checked against their granted permission set.
const (
	UserTypeMaster   = "Master"
	UserTypeStandard = "Standard"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Username     string       `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Email        string       `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Password     string       `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName     string       `gorm:"type:varchar(255)" json:"full_name"`
	UserType     string       `gorm:"type:varchar(20);default:'Standard'" json:"user_type"`
	IsActive     bool         `gorm:"default:true" json:"is_active"`
	Permissions  []Permission `gorm:"many2many:user_permissions;" json:"permissions,omitempty"`
	TokenVersion string       `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastSeenAt   *time.Time   `json:"last_seen_at,omitempty"`                // For user presence
}

// HasPermission decides whether a user holding the given granted set may
// perform the action identified by key. It is a pure predicate:
//
//   - nil user (unauthenticated) -> false
//   - inactive user -> false, even for Master
//   - active Master -> true without consulting the granted set
//   - otherwise -> true iff key appears in granted
//
// There is no prefix or wildcard matching.
func HasPermission(u *User, key string, granted []Permission) bool {
	if u == nil || !u.IsActive {
		return false
	}
	if u.UserType == UserTypeMaster {
		return true
	}
	for _, p := range granted {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Can checks the user's own granted set.
func (u *User) Can(key string) bool {
	if u == nil {
		return false
	}
	return HasPermission(u, key, u.Permissions)
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// GetPermissionKeys returns a slice of all permission keys granted to this user
func (u *User) GetPermissionKeys() []string {
	keys := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		keys[i] = p.Key
	}
	return keys
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID    `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email,omitempty"`
	FullName    string       `json:"full_name"`
	UserType    string       `json:"user_type"`
	IsActive    bool         `json:"is_active"`
	LastSeenAt  *time.Time   `json:"last_seen_at,omitempty"`
	Permissions []Permission `json:"permissions"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		UserType:    u.UserType,
		IsActive:    u.IsActive,
		LastSeenAt:  u.LastSeenAt,
		Permissions: u.Permissions,
	}
}
