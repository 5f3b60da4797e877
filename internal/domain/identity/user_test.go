package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid inputs", func(t *testing.T) {
		user, err := NewUser("budi.santoso", "budi@pabrik-tas.example", "$2a$10$hash", "Budi Santoso", RoleInventoryManager)
		require.NoError(t, err)

		assert.Equal(t, "budi.santoso", user.Username)
		assert.Equal(t, "budi@pabrik-tas.example", user.Email)
		assert.Equal(t, "Budi Santoso", user.FullName)
		assert.Equal(t, RoleInventoryManager, user.Role)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsPersisted())
	})

	t.Run("defaults role to inventory manager", func(t *testing.T) {
		user, err := NewUser("sari", "sari@pabrik-tas.example", "$2a$10$hash", "Sari Dewi", "")
		require.NoError(t, err)
		assert.Equal(t, RoleInventoryManager, user.Role)
	})

	t.Run("normalizes username and email to lowercase", func(t *testing.T) {
		user, err := NewUser("Budi", "Budi@Pabrik-Tas.Example", "$2a$10$hash", "Budi", RoleAdministrator)
		require.NoError(t, err)
		assert.Equal(t, "budi", user.Username)
		assert.Equal(t, "budi@pabrik-tas.example", user.Email)
	})

	t.Run("fails with short username", func(t *testing.T) {
		_, err := NewUser("ab", "a@b.co", "$2a$10$hash", "Name", RoleAdministrator)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser("budi", "not-an-email", "$2a$10$hash", "Name", RoleAdministrator)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email format")
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser("budi", "a@b.co", "$2a$10$hash", "Name", UserRole("ceo"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown user role")
	})

	t.Run("fails with empty password hash", func(t *testing.T) {
		_, err := NewUser("budi", "a@b.co", "", "Name", RoleAdministrator)
		require.Error(t, err)
	})
}

func TestUser_ActivateDeactivate(t *testing.T) {
	newActive := func(t *testing.T) *User {
		user, err := NewUser("budi", "a@b.co", "$2a$10$hash", "Budi", RoleFinancialStaff)
		require.NoError(t, err)
		return user
	}

	t.Run("deactivate then activate", func(t *testing.T) {
		user := newActive(t)
		require.NoError(t, user.Deactivate())
		assert.False(t, user.IsActive)
		require.NoError(t, user.Activate())
		assert.True(t, user.IsActive)
	})

	t.Run("deactivating twice fails", func(t *testing.T) {
		user := newActive(t)
		require.NoError(t, user.Deactivate())
		assert.Error(t, user.Deactivate())
	})

	t.Run("activating active user fails", func(t *testing.T) {
		user := newActive(t)
		assert.Error(t, user.Activate())
	})
}

func TestUserRole_IsValid(t *testing.T) {
	valid := []UserRole{RoleAdministrator, RoleInventoryManager, RoleFinancialStaff, RoleProductionManager}
	for _, role := range valid {
		assert.True(t, role.IsValid(), string(role))
	}
	assert.False(t, UserRole("supervisor").IsValid())
	assert.False(t, UserRole("").IsValid())
}

func TestUser_IsAdministrator(t *testing.T) {
	admin, err := NewUser("admin", "admin@pabrik-tas.example", "$2a$10$hash", "Admin", RoleAdministrator)
	require.NoError(t, err)
	assert.True(t, admin.IsAdministrator())

	staff, err := NewUser("staff", "staff@pabrik-tas.example", "$2a$10$hash", "Staff", RoleFinancialStaff)
	require.NoError(t, err)
	assert.False(t, staff.IsAdministrator())
}
