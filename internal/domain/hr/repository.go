package hr

import (
	"context"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	shared.Repository[Department]
	FindByName(ctx context.Context, name string) (*Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
}
