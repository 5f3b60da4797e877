package trade

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest represents one line of a new order. Exactly one
// of ProductID and RawMaterialID must be set. When ItemName is empty the
// referenced item's name is used.
type CreateOrderItemRequest struct {
	ProductID     *int64          `json:"product_id"`
	RawMaterialID *int64          `json:"raw_material_id"`
	ItemName      string          `json:"item_name" binding:"max=200"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Notes         string          `json:"notes" binding:"max=1000"`
}

// CreateOrderRequest represents a request to create an order.
// When OrderNumber is empty a document number is generated.
type CreateOrderRequest struct {
	OrderNumber string                   `json:"order_number" binding:"max=50"`
	CustomerID  int64                    `json:"customer_id" binding:"required"`
	OrderDate   *time.Time               `json:"order_date" time_format:"2006-01-02"`
	DueDate     *time.Time               `json:"due_date" time_format:"2006-01-02"`
	Notes       string                   `json:"notes" binding:"max=1000"`
	Items       []CreateOrderItemRequest `json:"items" binding:"dive"`
}

// UpdateOrderRequest represents a request to update an order header.
// Nil fields are left unchanged.
type UpdateOrderRequest struct {
	CustomerID *int64     `json:"customer_id"`
	DueDate    *time.Time `json:"due_date" time_format:"2006-01-02"`
	Notes      *string    `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateOrderItemRequest represents a quantity or price change for one
// order line. Nil fields are left unchanged.
type UpdateOrderItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Notes     *string          `json:"notes" binding:"omitempty,max=1000"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	ProductID     *int64          `json:"product_id,omitempty"`
	RawMaterialID *int64          `json:"raw_material_id,omitempty"`
	ItemName      string          `json:"item_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Notes         string          `json:"notes"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID             int64               `json:"id"`
	OrderNumber    string              `json:"order_number"`
	CustomerID     int64               `json:"customer_id"`
	Status         string              `json:"status"`
	OrderDate      time.Time           `json:"order_date"`
	DueDate        *time.Time          `json:"due_date,omitempty"`
	CompletionDate *time.Time          `json:"completion_date,omitempty"`
	DeliveryDate   *time.Time          `json:"delivery_date,omitempty"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Notes          string              `json:"notes"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending in_progress completed delivered cancelled"`
	CustomerID int64      `form:"customer_id"`
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderItemResponse converts a domain OrderItem to a response
func ToOrderItemResponse(it *trade.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:            it.ID,
		OrderID:       it.OrderID,
		ProductID:     it.ProductID,
		RawMaterialID: it.RawMaterialID,
		ItemName:      it.ItemName,
		Quantity:      it.Quantity,
		UnitPrice:     it.UnitPrice,
		TotalPrice:    it.TotalPrice,
		Notes:         it.Notes,
	}
}

// ToOrderResponse converts a domain Order to a response
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		Status:         o.Status.String(),
		OrderDate:      o.OrderDate,
		DueDate:        o.DueDate,
		CompletionDate: o.CompletionDate,
		DeliveryDate:   o.DeliveryDate,
		TotalAmount:    o.TotalAmount,
		Notes:          o.Notes,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders to responses
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
