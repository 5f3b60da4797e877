package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// employeeNumberPrefix is the document number prefix for employees
const employeeNumberPrefix = "EMP-"

// EmployeeService handles employee operations
type EmployeeService struct {
	employeeRepo   hr.EmployeeRepository
	departmentRepo hr.DepartmentRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo hr.EmployeeRepository, departmentRepo hr.DepartmentRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Create creates an employee in an existing department. When no
// employee number is supplied one is generated as EMP-NNNN.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	if _, err := s.departmentRepo.FindByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	employeeNumber := req.EmployeeNumber
	if employeeNumber == "" {
		seq, err := s.employeeRepo.NextSequence(ctx, employeeNumberPrefix)
		if err != nil {
			return nil, err
		}
		employeeNumber = fmt.Sprintf("%s%04d", employeeNumberPrefix, seq)
	} else {
		exists, err := s.employeeRepo.ExistsByNumber(ctx, employeeNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this number already exists")
		}
	}

	var hireDate time.Time
	if req.HireDate != nil {
		hireDate = *req.HireDate
	}

	employee, err := hr.NewEmployee(employeeNumber, req.FullName, req.DepartmentID, req.Position, hireDate)
	if err != nil {
		return nil, err
	}
	if req.Email != "" || req.Phone != "" {
		if err := employee.SetContact(req.Email, req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.PostalCode != "" {
		if err := employee.SetAddress(req.Address, req.City, req.PostalCode); err != nil {
			return nil, err
		}
	}
	employee.SetBirthDate(req.BirthDate)
	if req.Salary != nil {
		if err := employee.SetSalary(req.Salary); err != nil {
			return nil, err
		}
	}
	if req.EmergencyContactName != "" || req.EmergencyContactPhone != "" {
		if err := employee.SetEmergencyContact(req.EmergencyContactName, req.EmergencyContactPhone); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := employee.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByNumber retrieves an employee by employee number
func (s *EmployeeService) GetByNumber(ctx context.Context, employeeNumber string) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByNumber(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, filter EmployeeListFilter) ([]EmployeeResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.DepartmentID != 0 {
		domainFilter.Filters["department_id"] = filter.DepartmentID
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	employees, err := s.employeeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.employeeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToEmployeeResponses(employees), total, nil
}

// Update updates an employee. Nil request fields are left unchanged.
func (s *EmployeeService) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil && *req.DepartmentID != employee.DepartmentID {
		if _, err := s.departmentRepo.FindByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		if err := employee.SetDepartment(*req.DepartmentID); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil {
		if err := employee.SetFullName(*req.FullName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil {
		email := employee.Email
		phone := employee.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := employee.SetContact(email, phone); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.PostalCode != nil {
		address := employee.Address
		city := employee.City
		postalCode := employee.PostalCode
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.PostalCode != nil {
			postalCode = *req.PostalCode
		}
		if err := employee.SetAddress(address, city, postalCode); err != nil {
			return nil, err
		}
	}
	if req.BirthDate != nil {
		employee.SetBirthDate(req.BirthDate)
	}
	if req.Position != nil {
		if err := employee.SetPosition(*req.Position); err != nil {
			return nil, err
		}
	}
	if req.Salary != nil {
		if err := employee.SetSalary(req.Salary); err != nil {
			return nil, err
		}
	}
	if req.EmergencyContactName != nil || req.EmergencyContactPhone != nil {
		name := employee.EmergencyContactName
		phone := employee.EmergencyContactPhone
		if req.EmergencyContactName != nil {
			name = *req.EmergencyContactName
		}
		if req.EmergencyContactPhone != nil {
			phone = *req.EmergencyContactPhone
		}
		if err := employee.SetEmergencyContact(name, phone); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		if err := employee.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil && *req.IsActive != employee.IsActive {
		if *req.IsActive {
			err = employee.Activate()
		} else {
			err = employee.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Terminate ends an employment. A missing date means today.
func (s *EmployeeService) Terminate(ctx context.Context, id int64, req TerminateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var terminationDate time.Time
	if req.TerminationDate != nil {
		terminationDate = *req.TerminationDate
	}
	if err := employee.Terminate(terminationDate); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete removes an employee record
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
