package product

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type UpdateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewUpdateProductUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{UowFactory: factory, Cache: cache, Logger: log}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, productID string, input UpdateInput) (Output, error) {
	uow := uc.UowFactory.New()

	existing, err := uow.Products().FindByID(ctx, productID)
	if err != nil {
		return Output{}, err
	}
	if err := existing.Update(input.Name, input.Price, input.Description, input.Stock); err != nil {
		return Output{}, err
	}
	if err := uow.Products().Update(ctx, existing); err != nil {
		return Output{}, err
	}

	// the DB row changed under the cached snapshot
	if err := uc.Cache.Invalidate(ctx, productID); err != nil {
		uc.Logger.Warn(ctx, "product cache invalidation failed",
			logger.String("product_id", productID),
			logger.WithError(err),
		)
	}

	uc.Logger.Info(ctx, "product updated", logger.String("product_id", productID))
	return toOutput(existing), nil
}
