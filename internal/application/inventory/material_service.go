package inventory

import (
	"context"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialService handles raw material operations
type MaterialService struct {
	materialRepo inventory.RawMaterialRepository
	movementRepo inventory.InventoryMovementRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo inventory.RawMaterialRepository, movementRepo inventory.InventoryMovementRepository) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		movementRepo: movementRepo,
	}
}

// Create creates a new raw material
func (s *MaterialService) Create(ctx context.Context, req CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	exists, err := s.materialRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Raw material with this code already exists")
	}

	material, err := inventory.NewRawMaterial(req.Code, req.Name, req.Unit, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	material.Description = req.Description
	if req.MinimumStock != nil || req.MaximumStock != nil {
		minimum := decimal.Zero
		if req.MinimumStock != nil {
			minimum = *req.MinimumStock
		}
		if err := material.SetStockLevels(minimum, req.MaximumStock); err != nil {
			return nil, err
		}
	}
	if req.SupplierName != "" || req.SupplierContact != "" {
		if err := material.SetSupplier(req.SupplierName, req.SupplierContact); err != nil {
			return nil, err
		}
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// GetByID retrieves a raw material by ID
func (s *MaterialService) GetByID(ctx context.Context, id int64) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToRawMaterialResponse(material)
	return &response, nil
}

// GetByCode retrieves a raw material by code
func (s *MaterialService) GetByCode(ctx context.Context, code string) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToRawMaterialResponse(material)
	return &response, nil
}

// List retrieves raw materials with filtering and pagination
func (s *MaterialService) List(ctx context.Context, filter RawMaterialListFilter) ([]RawMaterialResponse, int64, error) {
	domainFilter := s.toDomainFilter(filter)

	materials, err := s.materialRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.materialRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToRawMaterialResponses(materials), total, nil
}

// ListLowStock retrieves active materials below their minimum stock
func (s *MaterialService) ListLowStock(ctx context.Context, filter RawMaterialListFilter) ([]RawMaterialResponse, error) {
	materials, err := s.materialRepo.FindLowStock(ctx, s.toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToRawMaterialResponses(materials), nil
}

// Update updates a raw material. Nil request fields are left unchanged.
func (s *MaterialService) Update(ctx context.Context, id int64, req UpdateRawMaterialRequest) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := material.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		material.Description = *req.Description
		material.Touch()
	}
	if req.UnitPrice != nil {
		if err := material.SetUnitPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.MinimumStock != nil || req.MaximumStock != nil {
		minimum := material.MinimumStock
		if req.MinimumStock != nil {
			minimum = *req.MinimumStock
		}
		maximum := material.MaximumStock
		if req.MaximumStock != nil {
			maximum = req.MaximumStock
		}
		if err := material.SetStockLevels(minimum, maximum); err != nil {
			return nil, err
		}
	}
	if req.SupplierName != nil || req.SupplierContact != nil {
		name := material.SupplierName
		contact := material.SupplierContact
		if req.SupplierName != nil {
			name = *req.SupplierName
		}
		if req.SupplierContact != nil {
			contact = *req.SupplierContact
		}
		if err := material.SetSupplier(name, contact); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil && *req.IsActive != material.IsActive {
		if *req.IsActive {
			err = material.Activate()
		} else {
			err = material.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// RecomputeStock replays the full movement ledger for a material and
// overwrites its cached stock level with the replayed value.
func (s *MaterialService) RecomputeStock(ctx context.Context, id int64) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.FindByMaterial(ctx, id)
	if err != nil {
		return nil, err
	}

	material.SetCurrentStock(inventory.ReplayStock(movements))
	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// Delete removes a raw material
func (s *MaterialService) Delete(ctx context.Context, id int64) error {
	return s.materialRepo.Delete(ctx, id)
}

func (s *MaterialService) toDomainFilter(filter RawMaterialListFilter) shared.Filter {
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
	if filter.Unit != "" {
		domainFilter.Filters["unit"] = filter.Unit
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	return domainFilter
}
