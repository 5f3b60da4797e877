package trade

import (
	"strings"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a production order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled, OrderStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusInProgress || target == OrderStatusCancelled
	case OrderStatusInProgress:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusCancelled, OrderStatusDelivered:
		return false // terminal states
	}
	return false
}

// OrderItem is a production line on an order. A line sells either a
// finished product or loose raw material, never both.
type OrderItem struct {
	shared.BaseEntity
	OrderID       int64
	ProductID     *int64
	RawMaterialID *int64
	ItemName      string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	Notes         string
}

// NewOrderItem creates an order line. TotalPrice is always derived from
// quantity and unit price.
func NewOrderItem(orderID int64, productID, rawMaterialID *int64, itemName string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if (productID == nil) == (rawMaterialID == nil) {
		return nil, shared.NewDomainError("INVALID_ITEM_REFERENCE", "Order item must reference exactly one of product or raw material")
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if len(itemName) > 200 {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot exceed 200 characters")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		ProductID:     productID,
		RawMaterialID: rawMaterialID,
		ItemName:      itemName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    quantity.Mul(unitPrice),
	}, nil
}

// SetNotes attaches free-form notes to the line
func (i *OrderItem) SetNotes(notes string) error {
	if len(notes) > 500 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 500 characters")
	}
	i.Notes = notes
	i.Touch()
	return nil
}

// UpdatePricing changes quantity and unit price and recomputes the line total
func (i *OrderItem) UpdatePricing(quantity, unitPrice decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.Quantity = quantity
	i.UnitPrice = unitPrice
	i.TotalPrice = quantity.Mul(unitPrice)
	i.Touch()
	return nil
}

// Order is the aggregate root for a customer production order
type Order struct {
	shared.BaseEntity
	OrderNumber    string
	CustomerID     int64
	Status         OrderStatus
	OrderDate      time.Time
	DueDate        *time.Time
	CompletionDate *time.Time
	DeliveryDate   *time.Time
	TotalAmount    decimal.Decimal
	Notes          string
	Items          []OrderItem
}

// NewOrder creates a pending order dated today unless an order date is given
func NewOrder(orderNumber string, customerID int64, orderDate time.Time) (*Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerID == 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order must reference a customer")
	}
	if orderDate.IsZero() {
		orderDate = shared.Today()
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		OrderNumber: orderNumber,
		CustomerID:  customerID,
		Status:      OrderStatusPending,
		OrderDate:   shared.DateOnly(orderDate),
		TotalAmount: decimal.Zero,
		Items:       make([]OrderItem, 0),
	}, nil
}

// SetDueDate sets the promised completion date
func (o *Order) SetDueDate(dueDate *time.Time) {
	if dueDate != nil {
		d := shared.DateOnly(*dueDate)
		o.DueDate = &d
	} else {
		o.DueDate = nil
	}
	o.Touch()
}

// SetNotes attaches free-form notes
func (o *Order) SetNotes(notes string) error {
	if len(notes) > 1000 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 1000 characters")
	}
	o.Notes = notes
	o.Touch()
	return nil
}

// IsEditable reports whether lines may still be changed
func (o *Order) IsEditable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusInProgress
}

// AddItem appends a line and recomputes the order total
func (o *Order) AddItem(productID, rawMaterialID *int64, itemName string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if !o.IsEditable() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Items can only be changed on a pending or in-progress order")
	}
	item, err := NewOrderItem(o.ID, productID, rawMaterialID, itemName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.RecalculateTotal()
	return item, nil
}

// RemoveItem removes a line by item ID and recomputes the order total
func (o *Order) RemoveItem(itemID int64) error {
	if !o.IsEditable() {
		return shared.NewDomainError("INVALID_STATUS", "Items can only be changed on a pending or in-progress order")
	}
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.RecalculateTotal()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RecalculateTotal recomputes TotalAmount as the sum of line totals
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalPrice)
	}
	o.TotalAmount = total
	o.Touch()
}

// Start moves the order into production
func (o *Order) Start() error {
	if !o.Status.CanTransitionTo(OrderStatusInProgress) {
		return shared.NewDomainError("INVALID_STATUS", "Order cannot be started from status "+o.Status.String())
	}
	o.Status = OrderStatusInProgress
	o.Touch()
	return nil
}

// Complete marks production finished and stamps the completion date
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(OrderStatusCompleted) {
		return shared.NewDomainError("INVALID_STATUS", "Order cannot be completed from status "+o.Status.String())
	}
	now := time.Now().UTC()
	o.Status = OrderStatusCompleted
	o.CompletionDate = &now
	o.Touch()
	return nil
}

// Deliver marks the order handed to the customer and stamps the delivery date
func (o *Order) Deliver() error {
	if !o.Status.CanTransitionTo(OrderStatusDelivered) {
		return shared.NewDomainError("INVALID_STATUS", "Order cannot be delivered from status "+o.Status.String())
	}
	now := time.Now().UTC()
	o.Status = OrderStatusDelivered
	o.DeliveryDate = &now
	o.Touch()
	return nil
}

// Cancel abandons the order
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATUS", "Order cannot be cancelled from status "+o.Status.String())
	}
	o.Status = OrderStatusCancelled
	o.Touch()
	return nil
}
