package catalog

import (
	"context"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
	FindByCode(ctx context.Context, code string) (*Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
