package partner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates active customer", func(t *testing.T) {
		c, err := NewCustomer("  Toko Tas Makmur  ")
		require.NoError(t, err)
		assert.Equal(t, "Toko Tas Makmur", c.Name)
		assert.True(t, c.IsActive)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("   ")
		require.Error(t, err)
	})

	t.Run("fails with overlong name", func(t *testing.T) {
		_, err := NewCustomer(strings.Repeat("a", 201))
		require.Error(t, err)
	})
}

func TestCustomer_SetContact(t *testing.T) {
	c, err := NewCustomer("Dewi")
	require.NoError(t, err)

	require.NoError(t, c.SetContact("Dewi@Example.COM", "+62 812 3456 7890"))
	assert.Equal(t, "dewi@example.com", c.Email)
	assert.Equal(t, "+62 812 3456 7890", c.Phone)

	assert.Error(t, c.SetContact(strings.Repeat("a", 256), ""))
	assert.Error(t, c.SetContact("", strings.Repeat("1", 51)))
}

func TestCustomer_SetAddress(t *testing.T) {
	c, err := NewCustomer("Dewi")
	require.NoError(t, err)

	require.NoError(t, c.SetAddress("Jl. Merdeka 12", "Bandung", "40111"))
	assert.Equal(t, "Bandung", c.City)
	assert.Equal(t, "40111", c.PostalCode)

	assert.Error(t, c.SetAddress(strings.Repeat("a", 1001), "", ""))
}

func TestCustomer_ActivateDeactivate(t *testing.T) {
	c, err := NewCustomer("Dewi")
	require.NoError(t, err)

	require.NoError(t, c.Deactivate())
	assert.False(t, c.IsActive)
	assert.Error(t, c.Deactivate())

	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive)
	assert.Error(t, c.Activate())
}
