package inventory

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// opnameNumberPrefix is the document number prefix for stock opnames
const opnameNumberPrefix = "SO"

// OpnameService handles stock opname operations
type OpnameService struct {
	opnameRepo   inventory.StockOpnameRepository
	materialRepo inventory.RawMaterialRepository
}

// NewOpnameService creates a new OpnameService
func NewOpnameService(opnameRepo inventory.StockOpnameRepository, materialRepo inventory.RawMaterialRepository) *OpnameService {
	return &OpnameService{
		opnameRepo:   opnameRepo,
		materialRepo: materialRepo,
	}
}

// Create plans a new stock opname. When no document number is supplied
// one is generated as SO-YYYYMMDD-NNNN.
func (s *OpnameService) Create(ctx context.Context, userID int64, req CreateStockOpnameRequest) (*StockOpnameResponse, error) {
	plannedDate := shared.Today()
	if req.PlannedDate != nil {
		plannedDate = shared.DateOnly(*req.PlannedDate)
	}

	opnameNumber := req.OpnameNumber
	if opnameNumber == "" {
		prefix := fmt.Sprintf("%s-%s-", opnameNumberPrefix, plannedDate.Format("20060102"))
		seq, err := s.opnameRepo.NextSequence(ctx, prefix)
		if err != nil {
			return nil, err
		}
		opnameNumber = fmt.Sprintf("%s%04d", prefix, seq)
	} else {
		exists, err := s.opnameRepo.ExistsByNumber(ctx, opnameNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock opname with this number already exists")
		}
	}

	opname, err := inventory.NewStockOpname(opnameNumber, req.Title, userID, plannedDate)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := opname.SetDescription(req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.opnameRepo.Save(ctx, opname); err != nil {
		return nil, err
	}

	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// GetByID retrieves an opname with its items
func (s *OpnameService) GetByID(ctx context.Context, id int64) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// GetByNumber retrieves an opname with its items by document number
func (s *OpnameService) GetByNumber(ctx context.Context, opnameNumber string) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByNumber(ctx, opnameNumber)
	if err != nil {
		return nil, err
	}
	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// List retrieves opnames with filtering and pagination
func (s *OpnameService) List(ctx context.Context, filter StockOpnameListFilter) ([]StockOpnameResponse, int64, error) {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	opnames, err := s.opnameRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.opnameRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockOpnameResponses(opnames), total, nil
}

// Update updates an opname header. Nil request fields are left unchanged.
func (s *OpnameService) Update(ctx context.Context, id int64, req UpdateStockOpnameRequest) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if opname.Status != inventory.OpnameStatusPlanned {
		return nil, shared.NewDomainError("INVALID_STATE", "Only planned stock opnames can be edited")
	}

	if req.Title != nil {
		opname.Title = *req.Title
		opname.Touch()
	}
	if req.Description != nil {
		if err := opname.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.PlannedDate != nil {
		opname.PlannedDate = shared.DateOnly(*req.PlannedDate)
		opname.Touch()
	}

	if err := s.opnameRepo.Save(ctx, opname); err != nil {
		return nil, err
	}

	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// AddItem adds a material line to an opname, snapshotting the system
// stock at the time of addition
func (s *OpnameService) AddItem(ctx context.Context, opnameID int64, req AddOpnameItemRequest) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByID(ctx, opnameID)
	if err != nil {
		return nil, err
	}

	material, err := s.materialRepo.FindByID(ctx, req.RawMaterialID)
	if err != nil {
		return nil, err
	}

	if _, err := opname.AddItem(material.ID, material.CurrentStock); err != nil {
		return nil, err
	}

	if err := s.opnameRepo.Save(ctx, opname); err != nil {
		return nil, err
	}

	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// CountItem records the physical count for one opname line
func (s *OpnameService) CountItem(ctx context.Context, opnameID, itemID int64, req CountOpnameItemRequest) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByID(ctx, opnameID)
	if err != nil {
		return nil, err
	}

	if opname.Status != inventory.OpnameStatusPlanned && opname.Status != inventory.OpnameStatusInProgress {
		return nil, shared.NewDomainError("INVALID_STATE", "Counts can only be recorded for a planned or in-progress stock opname")
	}

	var item *inventory.StockOpnameItem
	for i := range opname.Items {
		if opname.Items[i].ID == itemID {
			item = &opname.Items[i]
			break
		}
	}
	if item == nil {
		return nil, shared.ErrNotFound
	}

	if err := item.RecordCount(req.PhysicalStock, req.Notes); err != nil {
		return nil, err
	}

	if err := s.opnameRepo.Save(ctx, opname); err != nil {
		return nil, err
	}

	response := ToStockOpnameResponse(opname)
	return &response, nil
}

// Start moves an opname from planned to in progress
func (s *OpnameService) Start(ctx context.Context, id int64) (*StockOpnameResponse, error) {
	return s.transition(ctx, id, (*inventory.StockOpname).Start)
}

// Complete finishes an opname once every line has been counted
func (s *OpnameService) Complete(ctx context.Context, id int64) (*StockOpnameResponse, error) {
	return s.transition(ctx, id, (*inventory.StockOpname).Complete)
}

// Cancel abandons an opname that has not been completed
func (s *OpnameService) Cancel(ctx context.Context, id int64) (*StockOpnameResponse, error) {
	return s.transition(ctx, id, (*inventory.StockOpname).Cancel)
}

// Delete removes an opname and its items
func (s *OpnameService) Delete(ctx context.Context, id int64) error {
	opname, err := s.opnameRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if opname.Status == inventory.OpnameStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "A stock opname in progress cannot be deleted")
	}
	return s.opnameRepo.Delete(ctx, id)
}

func (s *OpnameService) transition(ctx context.Context, id int64, apply func(*inventory.StockOpname) error) (*StockOpnameResponse, error) {
	opname, err := s.opnameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(opname); err != nil {
		return nil, err
	}
	if err := s.opnameRepo.Save(ctx, opname); err != nil {
		return nil, err
	}
	response := ToStockOpnameResponse(opname)
	return &response, nil
}
