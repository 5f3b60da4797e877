package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
)

// newHRTestDB opens an in-memory SQLite database with the HR schema.
// It exercises the repositories against a real SQL engine instead of
// statement expectations.
func newHRTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.DepartmentModel{}, &models.EmployeeModel{}))
	return db
}

func TestGormDepartmentRepository_SaveAndFind(t *testing.T) {
	db := newHRTestDB(t)
	repo := NewGormDepartmentRepository(db)
	ctx := context.Background()

	department, err := hr.NewDepartment("Produksi")
	require.NoError(t, err)
	department.ManagerName = "Siti Rahayu"

	require.NoError(t, repo.Save(ctx, department))
	require.NotZero(t, department.ID)

	found, err := repo.FindByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Produksi", found.Name)
	assert.Equal(t, "Siti Rahayu", found.ManagerName)
	assert.True(t, found.IsActive)

	byName, err := repo.FindByName(ctx, "Produksi")
	require.NoError(t, err)
	assert.Equal(t, department.ID, byName.ID)
}

func TestGormDepartmentRepository_ExistsByName(t *testing.T) {
	db := newHRTestDB(t)
	repo := NewGormDepartmentRepository(db)
	ctx := context.Background()

	department, err := hr.NewDepartment("Gudang")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, department))

	exists, err := repo.ExistsByName(ctx, "Gudang")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Pemasaran")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormDepartmentRepository_UniqueName(t *testing.T) {
	db := newHRTestDB(t)
	repo := NewGormDepartmentRepository(db)
	ctx := context.Background()

	first, err := hr.NewDepartment("Keuangan")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	duplicate, err := hr.NewDepartment("Keuangan")
	require.NoError(t, err)
	assert.Error(t, repo.Save(ctx, duplicate))
}

func TestGormDepartmentRepository_Delete(t *testing.T) {
	db := newHRTestDB(t)
	repo := NewGormDepartmentRepository(db)
	ctx := context.Background()

	department, err := hr.NewDepartment("Sementara")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, department))

	require.NoError(t, repo.Delete(ctx, department.ID))

	_, err = repo.FindByID(ctx, department.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, department.ID), shared.ErrNotFound)
}

func TestGormEmployeeRepository_CountByDepartment(t *testing.T) {
	db := newHRTestDB(t)
	departmentRepo := NewGormDepartmentRepository(db)
	employeeRepo := NewGormEmployeeRepository(db)
	ctx := context.Background()

	department, err := hr.NewDepartment("Produksi")
	require.NoError(t, err)
	require.NoError(t, departmentRepo.Save(ctx, department))

	hireDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, number := range []string{"EMP-0001", "EMP-0002"} {
		employee, err := hr.NewEmployee(number, "Pegawai "+number, department.ID, "Operator Jahit", hireDate)
		require.NoError(t, err)
		require.NoError(t, employeeRepo.Save(ctx, employee))
	}

	count, err := employeeRepo.CountByDepartment(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = employeeRepo.CountByDepartment(ctx, department.ID+100)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGormEmployeeRepository_NextSequence(t *testing.T) {
	db := newHRTestDB(t)
	departmentRepo := NewGormDepartmentRepository(db)
	employeeRepo := NewGormEmployeeRepository(db)
	ctx := context.Background()

	department, err := hr.NewDepartment("Gudang")
	require.NoError(t, err)
	require.NoError(t, departmentRepo.Save(ctx, department))

	seq, err := employeeRepo.NextSequence(ctx, "EMP-")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	hireDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	employee, err := hr.NewEmployee("EMP-0001", "Agus Wijaya", department.ID, "Staf Gudang", hireDate)
	require.NoError(t, err)
	require.NoError(t, employeeRepo.Save(ctx, employee))

	seq, err = employeeRepo.NextSequence(ctx, "EMP-")
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}
