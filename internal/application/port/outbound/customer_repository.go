package outbound

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
)

type CustomerRepository interface {
	// FindByID returns entity.ErrCustomerNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	// FindByEmail matches against the normalized (lowercase) address and
	// returns nil, nil when no customer holds it.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	Insert(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
