package hr

import (
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// Department is an organizational unit of the factory (cutting, sewing,
// finishing, warehouse, office).
type Department struct {
	shared.BaseEntity
	Name        string
	Description string
	ManagerName string
	IsActive    bool
}

// NewDepartment creates an active department
func NewDepartment(name string) (*Department, error) {
	if err := validateDepartmentName(name); err != nil {
		return nil, err
	}
	return &Department{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		IsActive:   true,
	}, nil
}

// SetName renames the department
func (d *Department) SetName(name string) error {
	if err := validateDepartmentName(name); err != nil {
		return err
	}
	d.Name = strings.TrimSpace(name)
	d.Touch()
	return nil
}

// SetDescription sets the free-form description
func (d *Department) SetDescription(description string) error {
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	d.Description = description
	d.Touch()
	return nil
}

// SetManagerName records the supervising manager by name
func (d *Department) SetManagerName(managerName string) error {
	if len(managerName) > 200 {
		return shared.NewDomainError("INVALID_MANAGER", "Manager name cannot exceed 200 characters")
	}
	d.ManagerName = strings.TrimSpace(managerName)
	d.Touch()
	return nil
}

// Activate re-enables the department
func (d *Department) Activate() error {
	if d.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Department is already active")
	}
	d.IsActive = true
	d.Touch()
	return nil
}

// Deactivate disables the department for new placements
func (d *Department) Deactivate() error {
	if !d.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Department is already inactive")
	}
	d.IsActive = false
	d.Touch()
	return nil
}

func validateDepartmentName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Department name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Department name cannot exceed 200 characters")
	}
	return nil
}
