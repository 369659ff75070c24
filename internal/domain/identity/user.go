package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/rentfolio/backend/internal/domain/shared"
)

// Role represents a user's access level
type Role string

const (
	RoleAdmin   Role = "admin"   // Full access including user management
	RoleManager Role = "manager" // Manage properties, tenants and rates
	RoleViewer  Role = "viewer"  // Read-only access
)

// UserStatus represents whether a user may log in
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// User represents an account that can access the system
type User struct {
	shared.BaseAggregateRoot
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string     `gorm:"type:varchar(200);index"`
	DisplayName  string     `gorm:"type:varchar(200)"`
	PasswordHash string     `gorm:"type:varchar(200);not null"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'viewer'"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user. The password hash is produced by the caller;
// the domain never sees the plaintext password.
func NewUser(username, email, displayName, passwordHash string, role Role) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		DisplayName:       displayName,
		PasswordHash:      passwordHash,
		Role:              role,
		Status:            UserStatusActive,
	}, nil
}

// ChangeRole updates the user's role
func (u *User) ChangeRole(role Role) error {
	if err := validateRole(role); err != nil {
		return err
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// ChangePasswordHash replaces the stored password hash
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLogin stamps a successful login
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = time.Now()
}

// Disable blocks the user from logging in
func (u *User) Disable() error {
	if u.Status == UserStatusDisabled {
		return shared.NewDomainError("INVALID_STATE", "User is already disabled")
	}
	u.Status = UserStatusDisabled
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Enable re-activates a disabled user
func (u *User) Enable() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("INVALID_STATE", "User is already active")
	}
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// IsActive reports whether the user may log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CanManage reports whether the role may mutate property and rate data
func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9._\-]+$`)

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain lowercase letters, numbers, dots, underscores, and hyphens")
	}
	return nil
}

func validateRole(role Role) error {
	switch role {
	case RoleAdmin, RoleManager, RoleViewer:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Role must be 'admin', 'manager', or 'viewer'")
	}
}
