package models

import (
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	CompanyName string `gorm:"type:varchar(200)"`
	Email       string `gorm:"type:varchar(255);index"`
	Phone       string `gorm:"type:varchar(50);index"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20)"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		CompanyName: m.CompanyName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		City:        m.City,
		PostalCode:  m.PostalCode,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.CompanyName = c.CompanyName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.City = c.City
	m.PostalCode = c.PostalCode
	m.IsActive = c.IsActive
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
