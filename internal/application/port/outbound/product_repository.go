package outbound

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
)

type ProductRepository interface {
	// FindByID returns entity.ErrProductNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// FindByIDs returns only the subset of products that exist; callers
	// detect missing ids by comparing against what they asked for.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Insert(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductCache is a read-through cache for single-product lookups.
// Get returns nil, nil on a miss.
type ProductCache interface {
	Get(ctx context.Context, id string) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id string) error
}
