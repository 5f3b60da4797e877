package identity

import (
	"regexp"
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// UserRole represents the functional role of a back-office user
type UserRole string

const (
	RoleAdministrator     UserRole = "administrator"
	RoleInventoryManager  UserRole = "inventory_manager"
	RoleFinancialStaff    UserRole = "financial_staff"
	RoleProductionManager UserRole = "production_manager"
)

// IsValid checks if the role is a known value
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleInventoryManager, RoleFinancialStaff, RoleProductionManager:
		return true
	}
	return false
}

// User represents a back-office account.
// Passwords are only ever stored as bcrypt hashes.
type User struct {
	shared.BaseEntity
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         UserRole
	IsActive     bool
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NewUser creates a new active user. The passwordHash must already be
// hashed; hashing happens in the application layer.
func NewUser(username, email, passwordHash, fullName string, role UserRole) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if role == "" {
		role = RoleInventoryManager
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		IsActive:     true,
	}, nil
}

// SetEmail changes the user's email address
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Touch()
	return nil
}

// SetFullName changes the user's display name
func (u *User) SetFullName(fullName string) error {
	if err := validateFullName(fullName); err != nil {
		return err
	}
	u.FullName = strings.TrimSpace(fullName)
	u.Touch()
	return nil
}

// SetRole changes the user's role
func (u *User) SetRole(role UserRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}
	u.Role = role
	u.Touch()
	return nil
}

// SetPasswordHash replaces the stored password hash
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// Activate enables the account
func (u *User) Activate() error {
	if u.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}
	u.IsActive = true
	u.Touch()
	return nil
}

// Deactivate disables the account. Deactivated users cannot log in.
func (u *User) Deactivate() error {
	if !u.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "User is already inactive")
	}
	u.IsActive = false
	u.Touch()
	return nil
}

// IsAdministrator reports whether the user holds the administrator role
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 50 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username may only contain letters, numbers, dots, underscores, and hyphens")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 100 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 100 characters")
	}
	return nil
}
