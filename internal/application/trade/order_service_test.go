package trade

import (
	"context"
	"testing"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/catalog"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/partner"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockRawMaterialRepository is a mock implementation of inventory.RawMaterialRepository
type MockRawMaterialRepository struct {
	mock.Mock
}

func (m *MockRawMaterialRepository) FindByID(ctx context.Context, id int64) (*inventory.RawMaterial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterial, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) Save(ctx context.Context, material *inventory.RawMaterial) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockRawMaterialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRawMaterialRepository) FindByCode(ctx context.Context, code string) (*inventory.RawMaterial, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockRawMaterialRepository) FindLowStock(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterial, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.RawMaterial), args.Error(1)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func int64p(v int64) *int64 { return &v }

func newOrderService() (*OrderService, *MockOrderRepository, *MockCustomerRepository, *MockProductRepository, *MockRawMaterialRepository) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	materialRepo := new(MockRawMaterialRepository)
	service := NewOrderService(orderRepo, customerRepo, productRepo, materialRepo)
	return service, orderRepo, customerRepo, productRepo, materialRepo
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Toko Maju")
	require.NoError(t, err)
	customer.ID = 3
	return customer
}

func testProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("TB-001", "Tote Bag Kanvas", dec("45000"))
	require.NoError(t, err)
	product.ID = 5
	return product
}

func TestOrderService_Create_GeneratesNumberAndTotal(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, customerRepo, productRepo, _ := newOrderService()

	customerRepo.On("FindByID", ctx, int64(3)).Return(testCustomer(t), nil)
	productRepo.On("FindByID", ctx, int64(5)).Return(testProduct(t), nil)
	orderRepo.On("NextSequence", ctx, mock.MatchedBy(func(prefix string) bool {
		return len(prefix) == len("ORD-20060102-")
	})).Return(1, nil)
	orderRepo.On("Save", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)

	result, err := service.Create(ctx, CreateOrderRequest{
		CustomerID: 3,
		Items: []CreateOrderItemRequest{
			{ProductID: int64p(5), Quantity: dec("10"), UnitPrice: dec("45000")},
			{ProductID: int64p(5), ItemName: "Tote Bag Custom", Quantity: dec("2"), UnitPrice: dec("60000")},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, result.OrderNumber, "ORD-")
	assert.Equal(t, "pending", result.Status)
	require.Len(t, result.Items, 2)
	// the referenced product's name fills in a blank item name
	assert.Equal(t, "Tote Bag Kanvas", result.Items[0].ItemName)
	assert.Equal(t, "Tote Bag Custom", result.Items[1].ItemName)
	assert.True(t, result.TotalAmount.Equal(dec("570000")))
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Create_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	service, _, customerRepo, _, _ := newOrderService()

	customerRepo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, CreateOrderRequest{CustomerID: 99})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestOrderService_Update_LeavesAbsentFieldsUnchanged(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, _, _, _ := newOrderService()

	order, err := trade.NewOrder("ORD-20260101-0001", 3, shared.Today())
	require.NoError(t, err)
	require.NoError(t, order.SetNotes("rush order"))
	order.ID = 11

	orderRepo.On("FindByID", ctx, int64(11)).Return(order, nil)
	orderRepo.On("Save", ctx, order).Return(nil)

	due := shared.Today().AddDate(0, 0, 14)
	result, err := service.Update(ctx, 11, UpdateOrderRequest{DueDate: &due})

	require.NoError(t, err)
	assert.Equal(t, "rush order", result.Notes)
	assert.Equal(t, int64(3), result.CustomerID)
	require.NotNil(t, result.DueDate)
	assert.True(t, result.DueDate.Equal(due))
}

func TestOrderService_Update_RejectsCompletedOrder(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, _, _, _ := newOrderService()

	order, err := trade.NewOrder("ORD-20260101-0001", 3, shared.Today())
	require.NoError(t, err)
	require.NoError(t, order.Start())
	require.NoError(t, order.Complete())
	order.ID = 11

	orderRepo.On("FindByID", ctx, int64(11)).Return(order, nil)

	notes := "too late"
	result, err := service.Update(ctx, 11, UpdateOrderRequest{Notes: &notes})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestOrderService_UpdateItem_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, _, _, _ := newOrderService()

	order, err := trade.NewOrder("ORD-20260101-0001", 3, shared.Today())
	require.NoError(t, err)
	item, err := order.AddItem(int64p(5), nil, "Tote Bag Kanvas", dec("10"), dec("45000"))
	require.NoError(t, err)
	item.ID = 21
	order.RecalculateTotal()
	order.ID = 11

	orderRepo.On("FindByID", ctx, int64(11)).Return(order, nil)
	orderRepo.On("Save", ctx, order).Return(nil)

	qty := dec("4")
	result, err := service.UpdateItem(ctx, 11, 21, UpdateOrderItemRequest{Quantity: &qty})

	require.NoError(t, err)
	assert.True(t, result.TotalAmount.Equal(dec("180000")))
	assert.True(t, result.Items[0].UnitPrice.Equal(dec("45000")))
}

func TestOrderService_RemoveItem_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, _, _, _ := newOrderService()

	order, err := trade.NewOrder("ORD-20260101-0001", 3, shared.Today())
	require.NoError(t, err)
	first, err := order.AddItem(int64p(5), nil, "Tote Bag Kanvas", dec("10"), dec("45000"))
	require.NoError(t, err)
	first.ID = 21
	second, err := order.AddItem(nil, int64p(8), "Kain Kanvas", dec("3"), dec("25000"))
	require.NoError(t, err)
	second.ID = 22
	order.RecalculateTotal()
	order.ID = 11

	orderRepo.On("FindByID", ctx, int64(11)).Return(order, nil)
	orderRepo.On("Save", ctx, order).Return(nil)

	result, err := service.RemoveItem(ctx, 11, 21)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.True(t, result.TotalAmount.Equal(dec("75000")))
}

func TestOrderService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	service, orderRepo, _, _, _ := newOrderService()

	order, err := trade.NewOrder("ORD-20260101-0001", 3, shared.Today())
	require.NoError(t, err)
	order.ID = 11

	orderRepo.On("FindByID", ctx, int64(11)).Return(order, nil)
	orderRepo.On("Save", ctx, order).Return(nil)

	result, err := service.Start(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)

	result, err = service.Complete(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)

	result, err = service.Deliver(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "delivered", result.Status)

	_, err = service.Cancel(ctx, 11)
	require.Error(t, err)
}
