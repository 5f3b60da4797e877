package hr

import (
	"strings"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Employee is a factory worker or office staff member assigned to a
// department.
type Employee struct {
	shared.BaseEntity
	EmployeeNumber        string
	FullName              string
	Email                 string
	Phone                 string
	Address               string
	City                  string
	PostalCode            string
	BirthDate             *time.Time
	HireDate              time.Time
	TerminationDate       *time.Time
	DepartmentID          int64
	Position              string
	Salary                *decimal.Decimal
	IsActive              bool
	EmergencyContactName  string
	EmergencyContactPhone string
	Notes                 string
}

// NewEmployee creates an active employee hired today unless a hire date
// is given.
func NewEmployee(employeeNumber, fullName string, departmentID int64, position string, hireDate time.Time) (*Employee, error) {
	employeeNumber = strings.TrimSpace(employeeNumber)
	if employeeNumber == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NUMBER", "Employee number cannot be empty")
	}
	if len(employeeNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NUMBER", "Employee number cannot exceed 50 characters")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return nil, shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	if departmentID == 0 {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Employee must belong to a department")
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	if len(position) > 200 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 200 characters")
	}
	if hireDate.IsZero() {
		hireDate = shared.Today()
	}

	return &Employee{
		BaseEntity:     shared.NewBaseEntity(),
		EmployeeNumber: employeeNumber,
		FullName:       fullName,
		DepartmentID:   departmentID,
		Position:       position,
		HireDate:       shared.DateOnly(hireDate),
		IsActive:       true,
	}, nil
}

// SetFullName renames the employee
func (e *Employee) SetFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	e.FullName = fullName
	e.Touch()
	return nil
}

// SetContact sets email and phone
func (e *Employee) SetContact(email, phone string) error {
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	e.Email = strings.ToLower(strings.TrimSpace(email))
	e.Phone = strings.TrimSpace(phone)
	e.Touch()
	return nil
}

// SetAddress sets the home address fields
func (e *Employee) SetAddress(address, city, postalCode string) error {
	if len(address) > 1000 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 1000 characters")
	}
	if len(city) > 100 {
		return shared.NewDomainError("INVALID_ADDRESS", "City cannot exceed 100 characters")
	}
	if len(postalCode) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Postal code cannot exceed 20 characters")
	}
	e.Address = address
	e.City = strings.TrimSpace(city)
	e.PostalCode = strings.TrimSpace(postalCode)
	e.Touch()
	return nil
}

// SetBirthDate records the date of birth
func (e *Employee) SetBirthDate(birthDate *time.Time) {
	if birthDate != nil {
		d := shared.DateOnly(*birthDate)
		e.BirthDate = &d
	} else {
		e.BirthDate = nil
	}
	e.Touch()
}

// SetPosition changes the job title
func (e *Employee) SetPosition(position string) error {
	position = strings.TrimSpace(position)
	if position == "" {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	if len(position) > 200 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 200 characters")
	}
	e.Position = position
	e.Touch()
	return nil
}

// SetDepartment moves the employee to another department
func (e *Employee) SetDepartment(departmentID int64) error {
	if departmentID == 0 {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Employee must belong to a department")
	}
	e.DepartmentID = departmentID
	e.Touch()
	return nil
}

// SetSalary records the monthly salary
func (e *Employee) SetSalary(salary *decimal.Decimal) error {
	if salary != nil && salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	e.Salary = salary
	e.Touch()
	return nil
}

// SetEmergencyContact records who to call in an emergency
func (e *Employee) SetEmergencyContact(name, phone string) error {
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_EMERGENCY_CONTACT", "Emergency contact name cannot exceed 200 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_EMERGENCY_CONTACT", "Emergency contact phone cannot exceed 50 characters")
	}
	e.EmergencyContactName = strings.TrimSpace(name)
	e.EmergencyContactPhone = strings.TrimSpace(phone)
	e.Touch()
	return nil
}

// SetNotes attaches free-form notes
func (e *Employee) SetNotes(notes string) error {
	if len(notes) > 1000 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 1000 characters")
	}
	e.Notes = notes
	e.Touch()
	return nil
}

// Terminate ends the employment, stamping the termination date and
// deactivating the record. The date must not precede the hire date.
func (e *Employee) Terminate(terminationDate time.Time) error {
	if e.TerminationDate != nil {
		return shared.NewDomainError("ALREADY_TERMINATED", "Employee is already terminated")
	}
	if terminationDate.IsZero() {
		terminationDate = shared.Today()
	}
	d := shared.DateOnly(terminationDate)
	if d.Before(e.HireDate) {
		return shared.NewDomainError("INVALID_DATE", "Termination date cannot precede hire date")
	}
	e.TerminationDate = &d
	e.IsActive = false
	e.Touch()
	return nil
}

// Activate re-enables the record
func (e *Employee) Activate() error {
	if e.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Employee is already active")
	}
	e.IsActive = true
	e.Touch()
	return nil
}

// Deactivate disables the record without recording a termination
func (e *Employee) Deactivate() error {
	if !e.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Employee is already inactive")
	}
	e.IsActive = false
	e.Touch()
	return nil
}
