package hr

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartment(t *testing.T) {
	t.Run("creates active department", func(t *testing.T) {
		d, err := NewDepartment(" Sewing ")
		require.NoError(t, err)
		assert.Equal(t, "Sewing", d.Name)
		assert.True(t, d.IsActive)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewDepartment("")
		require.Error(t, err)
	})
}

func TestNewEmployee(t *testing.T) {
	t.Run("creates active employee hired today", func(t *testing.T) {
		e, err := NewEmployee("EMP-0001", "Rina Wati", 3, "Seamstress", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "EMP-0001", e.EmployeeNumber)
		assert.Equal(t, int64(3), e.DepartmentID)
		assert.True(t, e.IsActive)
		assert.Nil(t, e.TerminationDate)
		assert.Equal(t, 0, e.HireDate.Hour(), "hire date is date-only")
	})

	t.Run("fails without department", func(t *testing.T) {
		_, err := NewEmployee("EMP-0001", "Rina", 0, "Seamstress", time.Time{})
		require.Error(t, err)
	})

	t.Run("fails with empty position", func(t *testing.T) {
		_, err := NewEmployee("EMP-0001", "Rina", 3, " ", time.Time{})
		require.Error(t, err)
	})
}

func TestEmployee_Terminate(t *testing.T) {
	hired := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stamps date and deactivates", func(t *testing.T) {
		e, err := NewEmployee("EMP-0001", "Rina", 3, "Seamstress", hired)
		require.NoError(t, err)

		require.NoError(t, e.Terminate(time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)))
		require.NotNil(t, e.TerminationDate)
		assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), *e.TerminationDate)
		assert.False(t, e.IsActive)
	})

	t.Run("rejects date before hire", func(t *testing.T) {
		e, err := NewEmployee("EMP-0001", "Rina", 3, "Seamstress", hired)
		require.NoError(t, err)
		assert.Error(t, e.Terminate(hired.AddDate(0, -1, 0)))
	})

	t.Run("cannot terminate twice", func(t *testing.T) {
		e, err := NewEmployee("EMP-0001", "Rina", 3, "Seamstress", hired)
		require.NoError(t, err)
		require.NoError(t, e.Terminate(time.Time{}))
		assert.Error(t, e.Terminate(time.Time{}))
	})
}

func TestEmployee_SetSalary(t *testing.T) {
	e, err := NewEmployee("EMP-0001", "Rina", 3, "Seamstress", time.Time{})
	require.NoError(t, err)

	salary := decimal.RequireFromString("4500000")
	require.NoError(t, e.SetSalary(&salary))
	assert.True(t, e.Salary.Equal(salary))

	negative := decimal.RequireFromString("-1")
	assert.Error(t, e.SetSalary(&negative))

	require.NoError(t, e.SetSalary(nil))
	assert.Nil(t, e.Salary)
}
