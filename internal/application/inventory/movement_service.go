package inventory

import (
	"context"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
)

// MovementService handles the inventory movement ledger
type MovementService struct {
	movementRepo inventory.InventoryMovementRepository
	materialRepo inventory.RawMaterialRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(movementRepo inventory.InventoryMovementRepository, materialRepo inventory.RawMaterialRepository) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		materialRepo: materialRepo,
	}
}

// Record appends a movement to the ledger. The repository applies the
// stock effect to the material atomically; negative resulting stock is
// allowed and surfaces through the low stock report instead.
func (s *MovementService) Record(ctx context.Context, userID int64, req RecordMovementRequest) (*MovementResponse, error) {
	if _, err := s.materialRepo.FindByID(ctx, req.RawMaterialID); err != nil {
		return nil, err
	}

	movementDate := time.Time{}
	if req.MovementDate != nil {
		movementDate = *req.MovementDate
	}

	movement, err := inventory.NewInventoryMovement(
		req.RawMaterialID,
		userID,
		inventory.MovementType(req.MovementType),
		req.Quantity,
		req.UnitPrice,
		movementDate,
	)
	if err != nil {
		return nil, err
	}

	if req.ReferenceNumber != "" {
		if err := movement.SetReference(req.ReferenceNumber); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := movement.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.movementRepo.Append(ctx, movement); err != nil {
		return nil, err
	}

	response := ToMovementResponse(movement)
	return &response, nil
}

// GetByID retrieves a single ledger entry
func (s *MovementService) GetByID(ctx context.Context, id int64) (*MovementResponse, error) {
	movement, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMovementResponse(movement)
	return &response, nil
}

// List retrieves ledger entries with filtering and pagination
func (s *MovementService) List(ctx context.Context, filter MovementListFilter) ([]MovementResponse, int64, error) {
	domainFilter := inventory.MovementFilter{
		RawMaterialID: filter.RawMaterialID,
		MovementType:  inventory.MovementType(filter.MovementType),
		DateFrom:      filter.DateFrom,
		DateTo:        filter.DateTo,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}
	if domainFilter.Page <= 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize <= 0 {
		domainFilter.PageSize = 20
	}

	movements, err := s.movementRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.movementRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToMovementResponses(movements), total, nil
}

// ListByMaterial returns a material's full ledger in chronological order
func (s *MovementService) ListByMaterial(ctx context.Context, rawMaterialID int64) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindByMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}
