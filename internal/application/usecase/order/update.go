package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type UpdateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewUpdateOrderUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{
		UowFactory: factory,
		Cache:      cache,
		Logger:     log,
	}
}

// Execute replaces an order's item collection wholesale. Unlike creation,
// the whole workflow runs inside one transaction, including the initial
// read: the stock restored from the old items and the stock reserved for
// the new ones either both land or both revert.
func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, orderID string, input UpdateInput) (Output, error) {
	uc.Logger.Info(ctx, "updating order", logger.String("order_id", orderID))

	if len(input.Items) == 0 {
		return Output{}, entity.ErrOrderNeedsItems
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return Output{}, entity.ErrQuantityMustBePos
		}
	}

	uow := uc.UowFactory.New()
	if err := uow.Begin(ctx); err != nil {
		return Output{}, err
	}

	details, err := uow.Orders().FindByIDWithDetails(ctx, orderID)
	if err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}
	existing := details.Order

	touched := make(map[string]struct{})

	// Release the reservations held by the current items. A product that
	// has been deleted since the order was placed is skipped: there is no
	// stock pool left to restore into.
	for _, old := range existing.Items() {
		product, err := uow.Products().FindByID(ctx, old.ProductID())
		if err != nil {
			if entity.IsNotFound(err) {
				uc.Logger.Debug(ctx, "skipping stock restore for deleted product",
					logger.String("product_id", old.ProductID()))
				continue
			}
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if err := product.IncreaseStock(old.Quantity()); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if err := uow.Products().Update(ctx, product); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		touched[product.ID()] = struct{}{}
	}

	// Reserve stock for the requested items, one order item per request
	// line.
	newItems := make([]*entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := uow.Products().FindByID(ctx, line.ProductID)
		if err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if product.Stock() < line.Quantity {
			uc.Logger.Warn(ctx, "insufficient stock for order update",
				logger.String("product_id", line.ProductID),
				logger.Int("available", product.Stock()),
				logger.Int("requested", line.Quantity),
			)
			err := fmt.Errorf("%w: product %q available %d, requested %d",
				entity.ErrInsufficientStock, product.Name(), product.Stock(), line.Quantity)
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if err := product.ReduceStock(line.Quantity); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if err := uow.Products().Update(ctx, product); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		touched[product.ID()] = struct{}{}

		item, err := entity.NewOrderItem(product.ID(), line.Quantity, product.Price())
		if err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		newItems = append(newItems, item)
	}

	if err := existing.UpdateItems(newItems); err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}
	if err := uow.Orders().Update(ctx, existing); err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return Output{}, err
	}

	productIDs := make([]string, 0, len(touched))
	for id := range touched {
		productIDs = append(productIDs, id)
	}
	invalidateProducts(ctx, uc.Cache, uc.Logger, productIDs)

	uc.Logger.Info(ctx, "order updated",
		logger.String("order_id", existing.ID()),
		logger.String("total", existing.Total().String()),
	)
	return toOutput(existing), nil
}
