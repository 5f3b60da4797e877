package hr

import (
	"context"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// DepartmentService handles department operations
type DepartmentService struct {
	departmentRepo hr.DepartmentRepository
	employeeRepo   hr.EmployeeRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo hr.DepartmentRepository, employeeRepo hr.EmployeeRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create creates a department with a unique name
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
	}

	department, err := hr.NewDepartment(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := department.SetDescription(req.Description); err != nil {
			return nil, err
		}
	}
	if req.ManagerName != "" {
		if err := department.SetManagerName(req.ManagerName); err != nil {
			return nil, err
		}
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDepartmentResponse(department)
	return &response, nil
}

// List retrieves departments with filtering and pagination
func (s *DepartmentService) List(ctx context.Context, filter DepartmentListFilter) ([]DepartmentResponse, int64, error) {
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
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	departments, err := s.departmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.departmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDepartmentResponses(departments), total, nil
}

// Update updates a department. Nil request fields are left unchanged.
func (s *DepartmentService) Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != department.Name {
		exists, err := s.departmentRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
		}
		if err := department.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := department.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.ManagerName != nil {
		if err := department.SetManagerName(*req.ManagerName); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil && *req.IsActive != department.IsActive {
		if *req.IsActive {
			err = department.Activate()
		} else {
			err = department.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// Delete removes a department that has no employees assigned
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.departmentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.employeeRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("DEPARTMENT_NOT_EMPTY", "Department still has employees assigned")
	}

	return s.departmentRepo.Delete(ctx, id)
}
