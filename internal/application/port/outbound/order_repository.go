package outbound

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
)

// OrderDetails is the joined read model for a single order: the order with
// its items plus display snapshots of the referenced customer and products.
// Snapshots keep the core free of live cross-aggregate references.
type OrderDetails struct {
	Order         *entity.Order
	CustomerName  string
	CustomerEmail string
	// ProductNames maps product id to current product name. Products
	// deleted since the order was placed are simply absent.
	ProductNames map[string]string
}

type OrderRepository interface {
	// FindByID returns the order with its items.
	// Returns entity.ErrOrderNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// FindByIDWithDetails eagerly loads items and the referenced
	// customer/product snapshots in one round trip.
	FindByIDWithDetails(ctx context.Context, id string) (*OrderDetails, error)
	// FindAllWithDetails returns every order with the same joined
	// snapshots as FindByIDWithDetails, newest first.
	FindAllWithDetails(ctx context.Context) ([]*OrderDetails, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	// Insert persists the order together with its items.
	Insert(ctx context.Context, order *entity.Order) error
	// Update replaces the persisted item collection with the order's
	// current one.
	Update(ctx context.Context, order *entity.Order) error
	// Delete removes the order and, by ownership, its items.
	Delete(ctx context.Context, id string) error
	SaveOutboxEvent(ctx context.Context, eventID, aggregateID, eventType string, payload []byte, topic string) error
}
