package hr

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// CreateDepartmentRequest represents a request to create a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	ManagerName string `json:"manager_name" binding:"max=200"`
}

// UpdateDepartmentRequest represents a request to update a department.
// Nil fields are left unchanged.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	ManagerName *string `json:"manager_name" binding:"omitempty,max=200"`
	IsActive    *bool   `json:"is_active"`
}

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ManagerName string    `json:"manager_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentListFilter represents filter options for the department list
type DepartmentListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
}

// ToDepartmentResponse converts a domain department to a response DTO
func ToDepartmentResponse(d *hr.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ManagerName: d.ManagerName,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDepartmentResponses converts a slice of domain departments
func ToDepartmentResponses(departments []hr.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = ToDepartmentResponse(&departments[i])
	}
	return responses
}

// CreateEmployeeRequest represents a request to create an employee.
// When EmployeeNumber is empty one is generated as EMP-NNNN.
type CreateEmployeeRequest struct {
	EmployeeNumber        string           `json:"employee_number" binding:"max=50"`
	FullName              string           `json:"full_name" binding:"required,max=200"`
	Email                 string           `json:"email" binding:"omitempty,email,max=255"`
	Phone                 string           `json:"phone" binding:"max=50"`
	Address               string           `json:"address" binding:"max=500"`
	City                  string           `json:"city" binding:"max=100"`
	PostalCode            string           `json:"postal_code" binding:"max=20"`
	BirthDate             *time.Time       `json:"birth_date" time_format:"2006-01-02"`
	HireDate              *time.Time       `json:"hire_date" time_format:"2006-01-02"`
	DepartmentID          int64            `json:"department_id" binding:"required"`
	Position              string           `json:"position" binding:"required,max=200"`
	Salary                *decimal.Decimal `json:"salary"`
	EmergencyContactName  string           `json:"emergency_contact_name" binding:"max=200"`
	EmergencyContactPhone string           `json:"emergency_contact_phone" binding:"max=50"`
	Notes                 string           `json:"notes" binding:"max=1000"`
}

// UpdateEmployeeRequest represents a request to update an employee.
// Nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	FullName              *string          `json:"full_name" binding:"omitempty,max=200"`
	Email                 *string          `json:"email" binding:"omitempty,email,max=255"`
	Phone                 *string          `json:"phone" binding:"omitempty,max=50"`
	Address               *string          `json:"address" binding:"omitempty,max=500"`
	City                  *string          `json:"city" binding:"omitempty,max=100"`
	PostalCode            *string          `json:"postal_code" binding:"omitempty,max=20"`
	BirthDate             *time.Time       `json:"birth_date" time_format:"2006-01-02"`
	DepartmentID          *int64           `json:"department_id"`
	Position              *string          `json:"position" binding:"omitempty,max=200"`
	Salary                *decimal.Decimal `json:"salary"`
	EmergencyContactName  *string          `json:"emergency_contact_name" binding:"omitempty,max=200"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone" binding:"omitempty,max=50"`
	Notes                 *string          `json:"notes" binding:"omitempty,max=1000"`
	IsActive              *bool            `json:"is_active"`
}

// TerminateEmployeeRequest ends an employment. A zero date means today.
type TerminateEmployeeRequest struct {
	TerminationDate *time.Time `json:"termination_date" time_format:"2006-01-02"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID                    int64            `json:"id"`
	EmployeeNumber        string           `json:"employee_number"`
	FullName              string           `json:"full_name"`
	Email                 string           `json:"email"`
	Phone                 string           `json:"phone"`
	Address               string           `json:"address"`
	City                  string           `json:"city"`
	PostalCode            string           `json:"postal_code"`
	BirthDate             *time.Time       `json:"birth_date,omitempty"`
	HireDate              time.Time        `json:"hire_date"`
	TerminationDate       *time.Time       `json:"termination_date,omitempty"`
	DepartmentID          int64            `json:"department_id"`
	Position              string           `json:"position"`
	Salary                *decimal.Decimal `json:"salary,omitempty"`
	IsActive              bool             `json:"is_active"`
	EmergencyContactName  string           `json:"emergency_contact_name"`
	EmergencyContactPhone string           `json:"emergency_contact_phone"`
	Notes                 string           `json:"notes"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// EmployeeListFilter represents filter options for the employee list
type EmployeeListFilter struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir"`
	Search       string `form:"search"`
	DepartmentID int64  `form:"department_id"`
	IsActive     *bool  `form:"is_active"`
}

// ToEmployeeResponse converts a domain employee to a response DTO
func ToEmployeeResponse(e *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		EmployeeNumber:        e.EmployeeNumber,
		FullName:              e.FullName,
		Email:                 e.Email,
		Phone:                 e.Phone,
		Address:               e.Address,
		City:                  e.City,
		PostalCode:            e.PostalCode,
		BirthDate:             e.BirthDate,
		HireDate:              e.HireDate,
		TerminationDate:       e.TerminationDate,
		DepartmentID:          e.DepartmentID,
		Position:              e.Position,
		Salary:                e.Salary,
		IsActive:              e.IsActive,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		Notes:                 e.Notes,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain employees
func ToEmployeeResponses(employees []hr.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}
