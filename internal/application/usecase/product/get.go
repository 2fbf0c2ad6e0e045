package product

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewGetProductUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory, Cache: cache, Logger: log}
}

// Execute serves single-product reads cache-aside. Cache failures degrade
// to the database instead of failing the read.
func (uc *GetUseCaseImpl) Execute(ctx context.Context, productID string) (Output, error) {
	cached, err := uc.Cache.Get(ctx, productID)
	if err != nil {
		uc.Logger.Warn(ctx, "product cache read failed",
			logger.String("product_id", productID),
			logger.WithError(err),
		)
	}
	if cached != nil {
		return toOutput(cached), nil
	}

	uow := uc.UowFactory.New()
	found, err := uow.Products().FindByID(ctx, productID)
	if err != nil {
		return Output{}, err
	}

	if err := uc.Cache.Set(ctx, found); err != nil {
		uc.Logger.Warn(ctx, "product cache write failed",
			logger.String("product_id", productID),
			logger.WithError(err),
		)
	}
	return toOutput(found), nil
}

type ListUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListProductsUseCase(factory outbound.UnitOfWorkFactory) *ListUseCaseImpl {
	return &ListUseCaseImpl{UowFactory: factory}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) ([]Output, error) {
	uow := uc.UowFactory.New()

	found, err := uow.Products().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Output, 0, len(found))
	for _, p := range found {
		out = append(out, toOutput(p))
	}
	return out, nil
}
