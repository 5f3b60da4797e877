package handler

import (
	"context"

	inventoryapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// MaterialHandler handles raw material endpoints
type MaterialHandler struct {
	BaseHandler
	materialService *inventoryapp.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(materialService *inventoryapp.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// Create creates a raw material
// POST /api/v1/inventory/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves a raw material by ID
// GET /api/v1/inventory/materials/:id
func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByCode retrieves a raw material by its unique code
// GET /api/v1/inventory/materials/code/:code
func (h *MaterialHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Material code is required")
		return
	}

	result, err := h.materialService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves raw materials with filtering and pagination
// GET /api/v1/inventory/materials
func (h *MaterialHandler) List(c *gin.Context) {
	var filter inventoryapp.RawMaterialListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	results, total, err := h.materialService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, results, total, filter.Page, filter.PageSize)
}

// ListLowStock retrieves active materials below their minimum stock
// GET /api/v1/inventory/materials/low-stock
func (h *MaterialHandler) ListLowStock(c *gin.Context) {
	var filter inventoryapp.RawMaterialListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	results, err := h.materialService.ListLowStock(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Update updates a raw material
// PUT /api/v1/inventory/materials/:id
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req inventoryapp.UpdateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RecomputeStock replays the movement ledger for a material and
// repairs its cached stock figure
// POST /api/v1/inventory/materials/:id/recompute-stock
func (h *MaterialHandler) RecomputeStock(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialService.RecomputeStock(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a raw material
// DELETE /api/v1/inventory/materials/:id
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.materialService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MovementHandler handles inventory movement ledger endpoints
type MovementHandler struct {
	BaseHandler
	movementService *inventoryapp.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *inventoryapp.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// Record appends a movement to the ledger
// POST /api/v1/inventory/movements
func (h *MovementHandler) Record(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.movementService.Record(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves a single ledger entry
// GET /api/v1/inventory/movements/:id
func (h *MovementHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.movementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves ledger entries with filtering and pagination
// GET /api/v1/inventory/movements
func (h *MovementHandler) List(c *gin.Context) {
	var filter inventoryapp.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	results, total, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, results, total, filter.Page, filter.PageSize)
}

// ListByMaterial retrieves the full ledger for one material
// GET /api/v1/inventory/materials/:id/movements
func (h *MovementHandler) ListByMaterial(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	results, err := h.movementService.ListByMaterial(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// OpnameHandler handles stock opname endpoints
type OpnameHandler struct {
	BaseHandler
	opnameService *inventoryapp.OpnameService
}

// NewOpnameHandler creates a new OpnameHandler
func NewOpnameHandler(opnameService *inventoryapp.OpnameService) *OpnameHandler {
	return &OpnameHandler{opnameService: opnameService}
}

// Create plans a new stock opname
// POST /api/v1/inventory/opnames
func (h *OpnameHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.CreateStockOpnameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.opnameService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves a stock opname with its items
// GET /api/v1/inventory/opnames/:id
func (h *OpnameHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.opnameService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByNumber retrieves a stock opname by its document number
// GET /api/v1/inventory/opnames/number/:number
func (h *OpnameHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Opname number is required")
		return
	}

	result, err := h.opnameService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves stock opnames with filtering and pagination
// GET /api/v1/inventory/opnames
func (h *OpnameHandler) List(c *gin.Context) {
	var filter inventoryapp.StockOpnameListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	results, total, err := h.opnameService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, results, total, filter.Page, filter.PageSize)
}

// Update updates a planned stock opname
// PUT /api/v1/inventory/opnames/:id
func (h *OpnameHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req inventoryapp.UpdateStockOpnameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.opnameService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddItem adds a material line to a stock opname
// POST /api/v1/inventory/opnames/:id/items
func (h *OpnameHandler) AddItem(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req inventoryapp.AddOpnameItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.opnameService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// opnameItemURI binds the opname and item path parameters
type opnameItemURI struct {
	ID     int64 `uri:"id" binding:"required,min=1"`
	ItemID int64 `uri:"item_id" binding:"required,min=1"`
}

// CountItem records the physical count for one opname line
// PUT /api/v1/inventory/opnames/:id/items/:item_id/count
func (h *OpnameHandler) CountItem(c *gin.Context) {
	var uri opnameItemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req inventoryapp.CountOpnameItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.opnameService.CountItem(c.Request.Context(), uri.ID, uri.ItemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Start moves an opname to in progress
// POST /api/v1/inventory/opnames/:id/start
func (h *OpnameHandler) Start(c *gin.Context) {
	h.transition(c, h.opnameService.Start)
}

// Complete finishes an opname once every line is counted
// POST /api/v1/inventory/opnames/:id/complete
func (h *OpnameHandler) Complete(c *gin.Context) {
	h.transition(c, h.opnameService.Complete)
}

// Cancel abandons an opname
// POST /api/v1/inventory/opnames/:id/cancel
func (h *OpnameHandler) Cancel(c *gin.Context) {
	h.transition(c, h.opnameService.Cancel)
}

// Delete removes a stock opname
// DELETE /api/v1/inventory/opnames/:id
func (h *OpnameHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.opnameService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *OpnameHandler) transition(c *gin.Context, apply func(ctx context.Context, id int64) (*inventoryapp.StockOpnameResponse, error)) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := apply(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
