package partner

import (
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	shared.Repository[Customer]
}
