package models

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// FinancialCategoryModel is the persistence model for the FinancialCategory domain entity.
type FinancialCategoryModel struct {
	BaseModel
	Name            string                  `gorm:"type:varchar(200);not null;index"`
	TransactionType finance.TransactionType `gorm:"type:varchar(20);not null;index"`
	Description     string                  `gorm:"type:text"`
	IsActive        bool                    `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (FinancialCategoryModel) TableName() string {
	return "financial_categories"
}

// ToDomain converts the persistence model to a domain FinancialCategory entity.
func (m *FinancialCategoryModel) ToDomain() *finance.FinancialCategory {
	return &finance.FinancialCategory{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		TransactionType: m.TransactionType,
		Description:     m.Description,
		IsActive:        m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain FinancialCategory entity.
func (m *FinancialCategoryModel) FromDomain(c *finance.FinancialCategory) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.TransactionType = c.TransactionType
	m.Description = c.Description
	m.IsActive = c.IsActive
}

// FinancialCategoryModelFromDomain creates a new persistence model from a domain FinancialCategory.
func FinancialCategoryModelFromDomain(c *finance.FinancialCategory) *FinancialCategoryModel {
	m := &FinancialCategoryModel{}
	m.FromDomain(c)
	return m
}

// FinancialTransactionModel is the persistence model for the FinancialTransaction domain entity.
type FinancialTransactionModel struct {
	BaseModel
	TransactionNumber string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID            int64                   `gorm:"not null;index"`
	CategoryID        int64                   `gorm:"not null;index"`
	TransactionType   finance.TransactionType `gorm:"type:varchar(20);not null;index"`
	Amount            decimal.Decimal         `gorm:"type:decimal(15,2);not null"`
	Description       string                  `gorm:"type:text;not null"`
	ReferenceNumber   string                  `gorm:"type:varchar(100)"`
	TransactionDate   time.Time               `gorm:"not null;index"`
	PaymentMethod     string                  `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (FinancialTransactionModel) TableName() string {
	return "financial_transactions"
}

// ToDomain converts the persistence model to a domain FinancialTransaction entity.
func (m *FinancialTransactionModel) ToDomain() *finance.FinancialTransaction {
	return &finance.FinancialTransaction{
		BaseEntity:        m.BaseModel.ToDomain(),
		TransactionNumber: m.TransactionNumber,
		UserID:            m.UserID,
		CategoryID:        m.CategoryID,
		TransactionType:   m.TransactionType,
		Amount:            m.Amount,
		Description:       m.Description,
		ReferenceNumber:   m.ReferenceNumber,
		TransactionDate:   m.TransactionDate,
		PaymentMethod:     m.PaymentMethod,
	}
}

// FromDomain populates the persistence model from a domain FinancialTransaction entity.
func (m *FinancialTransactionModel) FromDomain(t *finance.FinancialTransaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.TransactionNumber = t.TransactionNumber
	m.UserID = t.UserID
	m.CategoryID = t.CategoryID
	m.TransactionType = t.TransactionType
	m.Amount = t.Amount
	m.Description = t.Description
	m.ReferenceNumber = t.ReferenceNumber
	m.TransactionDate = t.TransactionDate
	m.PaymentMethod = t.PaymentMethod
}

// FinancialTransactionModelFromDomain creates a new persistence model from a domain
// FinancialTransaction entity.
func FinancialTransactionModelFromDomain(t *finance.FinancialTransaction) *FinancialTransactionModel {
	m := &FinancialTransactionModel{}
	m.FromDomain(t)
	return m
}
