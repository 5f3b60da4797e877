package trade

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/catalog"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/partner"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/trade"
)

// orderNumberPrefix is the document number prefix for orders
const orderNumberPrefix = "ORD"

// OrderService handles production order operations
type OrderService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	materialRepo inventory.RawMaterialRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	materialRepo inventory.RawMaterialRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
	}
}

// Create creates an order with its items. The total is always computed
// server-side from the lines. When no document number is supplied one
// is generated as ORD-YYYYMMDD-NNNN.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	orderDate := shared.Today()
	if req.OrderDate != nil {
		orderDate = shared.DateOnly(*req.OrderDate)
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		prefix := fmt.Sprintf("%s-%s-", orderNumberPrefix, orderDate.Format("20060102"))
		seq, err := s.orderRepo.NextSequence(ctx, prefix)
		if err != nil {
			return nil, err
		}
		orderNumber = fmt.Sprintf("%s%04d", prefix, seq)
	} else {
		exists, err := s.orderRepo.ExistsByNumber(ctx, orderNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
		}
	}

	order, err := trade.NewOrder(orderNumber, req.CustomerID, orderDate)
	if err != nil {
		return nil, err
	}
	order.SetDueDate(req.DueDate)
	if req.Notes != "" {
		if err := order.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	for _, itemReq := range req.Items {
		if err := s.addItemToOrder(ctx, order, itemReq); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its items
func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// GetByNumber retrieves an order with its items by document number
func (s *OrderService) GetByNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
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
	if filter.CustomerID != 0 {
		domainFilter.Filters["customer_id"] = filter.CustomerID
	}
	if filter.DateFrom != nil {
		domainFilter.Filters["order_date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		domainFilter.Filters["order_date_to"] = *filter.DateTo
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Update updates an order header. Nil request fields are left unchanged.
func (s *OrderService) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsEditable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Order can no longer be edited")
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
		order.CustomerID = *req.CustomerID
		order.Touch()
	}
	if req.DueDate != nil {
		order.SetDueDate(req.DueDate)
	}
	if req.Notes != nil {
		if err := order.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// AddItem adds a line to an editable order and recomputes the total
func (s *OrderService) AddItem(ctx context.Context, orderID int64, req CreateOrderItemRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.addItemToOrder(ctx, order, req); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// UpdateItem changes the quantity or price of one line and recomputes
// the total. Nil request fields are left unchanged.
func (s *OrderService) UpdateItem(ctx context.Context, orderID, itemID int64, req UpdateOrderItemRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsEditable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Order can no longer be edited")
	}

	var item *trade.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, shared.ErrNotFound
	}

	quantity := item.Quantity
	unitPrice := item.UnitPrice
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	if err := item.UpdatePricing(quantity, unitPrice); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		if err := item.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}
	order.RecalculateTotal()

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// RemoveItem removes a line from an editable order and recomputes the total
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Start moves an order from pending to in progress
func (s *OrderService) Start(ctx context.Context, id int64) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.Order).Start)
}

// Complete marks production of an order as finished
func (s *OrderService) Complete(ctx context.Context, id int64) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.Order).Complete)
}

// Deliver marks a completed order as handed over to the customer
func (s *OrderService) Deliver(ctx context.Context, id int64) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.Order).Deliver)
}

// Cancel abandons an order that has not been completed
func (s *OrderService) Cancel(ctx context.Context, id int64) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.Order).Cancel)
}

// Delete removes an order and its items
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Status != trade.OrderStatusPending && order.Status != trade.OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Only pending or cancelled orders can be deleted")
	}
	return s.orderRepo.Delete(ctx, id)
}

// addItemToOrder resolves the item reference, fills in a missing item
// name from the referenced entity and appends the line to the order.
func (s *OrderService) addItemToOrder(ctx context.Context, order *trade.Order, req CreateOrderItemRequest) error {
	itemName := req.ItemName

	switch {
	case req.ProductID != nil && req.RawMaterialID == nil:
		product, err := s.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			return err
		}
		if itemName == "" {
			itemName = product.Name
		}
	case req.RawMaterialID != nil && req.ProductID == nil:
		material, err := s.materialRepo.FindByID(ctx, *req.RawMaterialID)
		if err != nil {
			return err
		}
		if itemName == "" {
			itemName = material.Name
		}
	}

	item, err := order.AddItem(req.ProductID, req.RawMaterialID, itemName, req.Quantity, req.UnitPrice)
	if err != nil {
		return err
	}
	if req.Notes != "" {
		if err := item.SetNotes(req.Notes); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) transition(ctx context.Context, id int64, apply func(*trade.Order) error) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}
