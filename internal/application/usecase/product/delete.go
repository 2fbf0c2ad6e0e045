package product

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewDeleteProductUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{UowFactory: factory, Cache: cache, Logger: log}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, productID string) error {
	uow := uc.UowFactory.New()

	if _, err := uow.Products().FindByID(ctx, productID); err != nil {
		return err
	}
	if err := uow.Products().Delete(ctx, productID); err != nil {
		return err
	}

	if err := uc.Cache.Invalidate(ctx, productID); err != nil {
		uc.Logger.Warn(ctx, "product cache invalidation failed",
			logger.String("product_id", productID),
			logger.WithError(err),
		)
	}

	uc.Logger.Info(ctx, "product deleted", logger.String("product_id", productID))
	return nil
}
