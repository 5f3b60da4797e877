package trade

import (
	"context"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// OrderRepository defines persistence operations for orders and their
// items. Save persists the aggregate including its items.
type OrderRepository interface {
	shared.Repository[Order]
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	ExistsByNumber(ctx context.Context, orderNumber string) (bool, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
}
