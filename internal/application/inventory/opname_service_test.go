package inventory

import (
	"context"
	"testing"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

// MockStockOpnameRepository is a mock implementation of inventory.StockOpnameRepository
type MockStockOpnameRepository struct {
	mock.Mock
}

func (m *MockStockOpnameRepository) FindByID(ctx context.Context, id int64) (*inventory.StockOpname, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockOpname), args.Error(1)
}

func (m *MockStockOpnameRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockOpname, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockOpname), args.Error(1)
}

func (m *MockStockOpnameRepository) Save(ctx context.Context, opname *inventory.StockOpname) error {
	args := m.Called(ctx, opname)
	return args.Error(0)
}

func (m *MockStockOpnameRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockOpnameRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockOpnameRepository) FindByNumber(ctx context.Context, opnameNumber string) (*inventory.StockOpname, error) {
	args := m.Called(ctx, opnameNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockOpname), args.Error(1)
}

func (m *MockStockOpnameRepository) ExistsByNumber(ctx context.Context, opnameNumber string) (bool, error) {
	args := m.Called(ctx, opnameNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockOpnameRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testMaterial(t *testing.T) *inventory.RawMaterial {
	t.Helper()
	material, err := inventory.NewRawMaterial("KNV-001", "Kain Kanvas", "meter", dec("25000"))
	require.NoError(t, err)
	material.ID = 8
	material.SetCurrentStock(dec("120"))
	return material
}

func TestOpnameService_Create_GeneratesNumber(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opnameRepo.On("NextSequence", ctx, mock.MatchedBy(func(prefix string) bool {
		return len(prefix) == len("SO-20060102-")
	})).Return(3, nil)
	opnameRepo.On("Save", ctx, mock.AnythingOfType("*inventory.StockOpname")).Return(nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	result, err := service.Create(ctx, 7, CreateStockOpnameRequest{Title: "Opname Bulanan Agustus"})

	require.NoError(t, err)
	assert.Contains(t, result.OpnameNumber, "SO-")
	assert.Contains(t, result.OpnameNumber, "-0003")
	assert.Equal(t, "planned", result.Status)
	opnameRepo.AssertExpectations(t)
}

func TestOpnameService_AddItem_SnapshotsSystemStock(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)
	materialRepo.On("FindByID", ctx, int64(8)).Return(testMaterial(t), nil)
	opnameRepo.On("Save", ctx, opname).Return(nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	result, err := service.AddItem(ctx, 14, AddOpnameItemRequest{RawMaterialID: 8})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].SystemStock.Equal(dec("120")))
	assert.Nil(t, result.Items[0].CountedAt)
}

func TestOpnameService_CountItem_ComputesDifference(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	item, err := opname.AddItem(8, dec("120"))
	require.NoError(t, err)
	item.ID = 41
	require.NoError(t, opname.Start())
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)
	opnameRepo.On("Save", ctx, opname).Return(nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	result, err := service.CountItem(ctx, 14, 41, CountOpnameItemRequest{
		PhysicalStock: dec("117.5"),
		Notes:         "dua gulung rusak",
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	counted := result.Items[0]
	assert.NotNil(t, counted.CountedAt)
	require.NotNil(t, counted.PhysicalStock)
	assert.True(t, counted.PhysicalStock.Equal(dec("117.5")))
	require.NotNil(t, counted.Difference)
	// difference is physical minus system, negative on shrinkage
	assert.True(t, counted.Difference.Equal(dec("-2.5")))
}

func TestOpnameService_CountItem_AllowedWhilePlanned(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	item, err := opname.AddItem(8, dec("120"))
	require.NoError(t, err)
	item.ID = 41
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)
	opnameRepo.On("Save", ctx, opname).Return(nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	// counting is open as soon as the document exists, before Start
	result, err := service.CountItem(ctx, 14, 41, CountOpnameItemRequest{PhysicalStock: dec("117.5")})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.NotNil(t, result.Items[0].CountedAt)
}

func TestOpnameService_CountItem_RejectedWhenCancelled(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	item, err := opname.AddItem(8, dec("120"))
	require.NoError(t, err)
	item.ID = 41
	require.NoError(t, opname.Cancel())
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	result, err := service.CountItem(ctx, 14, 41, CountOpnameItemRequest{PhysicalStock: dec("117.5")})

	require.Error(t, err)
	assert.Nil(t, result)
	opnameRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOpnameService_Update_OnlyWhilePlanned(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	require.NoError(t, opname.Start())
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	title := "Judul Baru"
	result, err := service.Update(ctx, 14, UpdateStockOpnameRequest{Title: &title})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestOpnameService_Complete_RequiresAllCounted(t *testing.T) {
	ctx := context.Background()
	opnameRepo := new(MockStockOpnameRepository)
	materialRepo := new(MockRawMaterialRepository)

	opname, err := inventory.NewStockOpname("SO-20260801-0001", "Opname Bulanan", 7, shared.Today())
	require.NoError(t, err)
	item, err := opname.AddItem(8, dec("120"))
	require.NoError(t, err)
	item.ID = 41
	require.NoError(t, opname.Start())
	opname.ID = 14

	opnameRepo.On("FindByID", ctx, int64(14)).Return(opname, nil)

	service := NewOpnameService(opnameRepo, materialRepo)

	_, err = service.Complete(ctx, 14)
	require.Error(t, err)

	require.NoError(t, item.RecordCount(dec("120"), ""))
	opnameRepo.On("Save", ctx, opname).Return(nil)

	result, err := service.Complete(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}
