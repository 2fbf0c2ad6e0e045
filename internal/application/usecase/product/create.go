package product

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type CreateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Logger     logger.Logger
}

func NewCreateProductUseCase(factory outbound.UnitOfWorkFactory, log logger.Logger) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{UowFactory: factory, Logger: log}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	uow := uc.UowFactory.New()

	newProduct, err := entity.NewProduct(input.Name, input.Price, input.Description, input.Stock)
	if err != nil {
		return Output{}, err
	}
	if err := uow.Products().Insert(ctx, newProduct); err != nil {
		return Output{}, err
	}

	uc.Logger.Info(ctx, "product created", logger.String("product_id", newProduct.ID()))
	return toOutput(newProduct), nil
}
