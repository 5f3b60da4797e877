package models

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	OrderNumber    string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID     int64             `gorm:"not null;index"`
	Status         trade.OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	OrderDate      time.Time         `gorm:"not null;index"`
	DueDate        *time.Time        `gorm:""`
	CompletionDate *time.Time        `gorm:""`
	DeliveryDate   *time.Time        `gorm:""`
	TotalAmount    decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	Notes          string            `gorm:"type:text"`
	Items          []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for a single order line.
type OrderItemModel struct {
	BaseModel
	OrderID       int64           `gorm:"not null;index"`
	ProductID     *int64          `gorm:"index"`
	RawMaterialID *int64          `gorm:"index"`
	ItemName      string          `gorm:"type:varchar(200);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = *it.ToDomain()
	}
	return &trade.Order{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrderNumber:    m.OrderNumber,
		CustomerID:     m.CustomerID,
		Status:         m.Status,
		OrderDate:      m.OrderDate,
		DueDate:        m.DueDate,
		CompletionDate: m.CompletionDate,
		DeliveryDate:   m.DeliveryDate,
		TotalAmount:    m.TotalAmount,
		Notes:          m.Notes,
		Items:          items,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OrderNumber = o.OrderNumber
	m.CustomerID = o.CustomerID
	m.Status = o.Status
	m.OrderDate = o.OrderDate
	m.DueDate = o.DueDate
	m.CompletionDate = o.CompletionDate
	m.DeliveryDate = o.DeliveryDate
	m.TotalAmount = o.TotalAmount
	m.Notes = o.Notes
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *trade.OrderItem {
	return &trade.OrderItem{
		BaseEntity:    m.BaseModel.ToDomain(),
		OrderID:       m.OrderID,
		ProductID:     m.ProductID,
		RawMaterialID: m.RawMaterialID,
		ItemName:      m.ItemName,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalPrice:    m.TotalPrice,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain OrderItem entity.
func (m *OrderItemModel) FromDomain(it *trade.OrderItem) {
	m.FromDomainBaseEntity(it.BaseEntity)
	m.OrderID = it.OrderID
	m.ProductID = it.ProductID
	m.RawMaterialID = it.RawMaterialID
	m.ItemName = it.ItemName
	m.Quantity = it.Quantity
	m.UnitPrice = it.UnitPrice
	m.TotalPrice = it.TotalPrice
	m.Notes = it.Notes
}
