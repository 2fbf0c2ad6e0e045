package order

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewDeleteOrderUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{
		UowFactory: factory,
		Cache:      cache,
		Logger:     log,
	}
}

// Execute deletes an order, restoring each item's quantity to its product
// before the order record disappears. Items referencing the same product
// restore cumulatively.
func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, orderID string) error {
	uc.Logger.Info(ctx, "deleting order", logger.String("order_id", orderID))

	uow := uc.UowFactory.New()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	details, err := uow.Orders().FindByIDWithDetails(ctx, orderID)
	if err != nil {
		return rollbackOn(ctx, uow, err)
	}

	restored := make([]string, 0, len(details.Order.Items()))
	for _, item := range details.Order.Items() {
		product, err := uow.Products().FindByID(ctx, item.ProductID())
		if err != nil {
			if entity.IsNotFound(err) {
				uc.Logger.Debug(ctx, "skipping stock restore for deleted product",
					logger.String("product_id", item.ProductID()))
				continue
			}
			return rollbackOn(ctx, uow, err)
		}
		if err := product.IncreaseStock(item.Quantity()); err != nil {
			return rollbackOn(ctx, uow, err)
		}
		if err := uow.Products().Update(ctx, product); err != nil {
			return rollbackOn(ctx, uow, err)
		}
		restored = append(restored, product.ID())
	}

	if err := uow.Orders().Delete(ctx, orderID); err != nil {
		return rollbackOn(ctx, uow, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}
	invalidateProducts(ctx, uc.Cache, uc.Logger, restored)

	uc.Logger.Info(ctx, "order deleted", logger.String("order_id", orderID))
	return nil
}
