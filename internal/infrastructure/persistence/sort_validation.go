package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"username":   true,
	"email":      true,
	"full_name":  true,
	"role":       true,
	"is_active":  true,
}

// RawMaterialSortFields contains allowed sort fields for raw materials
var RawMaterialSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"code":          true,
	"name":          true,
	"unit":          true,
	"unit_price":    true,
	"current_stock": true,
	"minimum_stock": true,
	"is_active":     true,
}

// MovementSortFields contains allowed sort fields for inventory movements
var MovementSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"movement_date":   true,
	"movement_type":   true,
	"raw_material_id": true,
	"quantity":        true,
	"total_value":     true,
}

// StockOpnameSortFields contains allowed sort fields for stock opnames
var StockOpnameSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"opname_number": true,
	"title":         true,
	"status":        true,
	"planned_date":  true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"company_name": true,
	"email":        true,
	"city":         true,
	"is_active":    true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"category":   true,
	"unit_price": true,
	"is_active":  true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"customer_id":  true,
	"status":       true,
	"order_date":   true,
	"due_date":     true,
	"total_amount": true,
}

// FinancialCategorySortFields contains allowed sort fields for financial categories
var FinancialCategorySortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"transaction_type": true,
	"is_active":        true,
}

// FinancialTransactionSortFields contains allowed sort fields for financial transactions
var FinancialTransactionSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"transaction_number": true,
	"transaction_type":   true,
	"category_id":        true,
	"amount":             true,
	"transaction_date":   true,
}

// DepartmentSortFields contains allowed sort fields for departments
var DepartmentSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"manager_name": true,
	"is_active":    true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"employee_number": true,
	"full_name":       true,
	"department_id":   true,
	"position":        true,
	"hire_date":       true,
	"is_active":       true,
}
