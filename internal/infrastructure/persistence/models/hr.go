package models

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// DepartmentModel is the persistence model for the Department domain entity.
type DepartmentModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	ManagerName string `gorm:"type:varchar(200)"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity.
func (m *DepartmentModel) ToDomain() *hr.Department {
	return &hr.Department{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		ManagerName: m.ManagerName,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Department entity.
func (m *DepartmentModel) FromDomain(d *hr.Department) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Name = d.Name
	m.Description = d.Description
	m.ManagerName = d.ManagerName
	m.IsActive = d.IsActive
}

// DepartmentModelFromDomain creates a new persistence model from a domain Department entity.
func DepartmentModelFromDomain(d *hr.Department) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d)
	return m
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	EmployeeNumber        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	FullName              string           `gorm:"type:varchar(200);not null"`
	Email                 string           `gorm:"type:varchar(255);index"`
	Phone                 string           `gorm:"type:varchar(50)"`
	Address               string           `gorm:"type:text"`
	City                  string           `gorm:"type:varchar(100)"`
	PostalCode            string           `gorm:"type:varchar(20)"`
	BirthDate             *time.Time       `gorm:""`
	HireDate              time.Time        `gorm:"not null"`
	TerminationDate       *time.Time       `gorm:""`
	DepartmentID          int64            `gorm:"not null;index"`
	Position              string           `gorm:"type:varchar(200);not null"`
	Salary                *decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsActive              bool             `gorm:"not null;default:true"`
	EmergencyContactName  string           `gorm:"type:varchar(200)"`
	EmergencyContactPhone string           `gorm:"type:varchar(50)"`
	Notes                 string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *hr.Employee {
	return &hr.Employee{
		BaseEntity:            m.BaseModel.ToDomain(),
		EmployeeNumber:        m.EmployeeNumber,
		FullName:              m.FullName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		Address:               m.Address,
		City:                  m.City,
		PostalCode:            m.PostalCode,
		BirthDate:             m.BirthDate,
		HireDate:              m.HireDate,
		TerminationDate:       m.TerminationDate,
		DepartmentID:          m.DepartmentID,
		Position:              m.Position,
		Salary:                m.Salary,
		IsActive:              m.IsActive,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		Notes:                 m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *hr.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.EmployeeNumber = e.EmployeeNumber
	m.FullName = e.FullName
	m.Email = e.Email
	m.Phone = e.Phone
	m.Address = e.Address
	m.City = e.City
	m.PostalCode = e.PostalCode
	m.BirthDate = e.BirthDate
	m.HireDate = e.HireDate
	m.TerminationDate = e.TerminationDate
	m.DepartmentID = e.DepartmentID
	m.Position = e.Position
	m.Salary = e.Salary
	m.IsActive = e.IsActive
	m.EmergencyContactName = e.EmergencyContactName
	m.EmergencyContactPhone = e.EmergencyContactPhone
	m.Notes = e.Notes
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *hr.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}
