package customer

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
)

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewGetCustomerUseCase(factory outbound.UnitOfWorkFactory) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, customerID string) (Output, error) {
	uow := uc.UowFactory.New()

	found, err := uow.Customers().FindByID(ctx, customerID)
	if err != nil {
		return Output{}, err
	}
	return toOutput(found), nil
}

type ListUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListCustomersUseCase(factory outbound.UnitOfWorkFactory) *ListUseCaseImpl {
	return &ListUseCaseImpl{UowFactory: factory}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) ([]Output, error) {
	uow := uc.UowFactory.New()

	found, err := uow.Customers().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Output, 0, len(found))
	for _, c := range found {
		out = append(out, toOutput(c))
	}
	return out, nil
}
