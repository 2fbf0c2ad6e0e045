package order

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
)

type GetUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewGetOrderUseCase(factory outbound.UnitOfWorkFactory) *GetUseCaseImpl {
	return &GetUseCaseImpl{UowFactory: factory}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, orderID string) (DetailsOutput, error) {
	uow := uc.UowFactory.New()

	details, err := uow.Orders().FindByIDWithDetails(ctx, orderID)
	if err != nil {
		return DetailsOutput{}, err
	}
	return toDetailsOutput(details), nil
}

// ListUseCaseImpl lists every order with its customer and product
// snapshots joined in.
type ListUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListOrdersUseCase(factory outbound.UnitOfWorkFactory) *ListUseCaseImpl {
	return &ListUseCaseImpl{UowFactory: factory}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) ([]DetailsOutput, error) {
	uow := uc.UowFactory.New()

	found, err := uow.Orders().FindAllWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	return toDetailsOutputs(found), nil
}

type ListByCustomerUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
}

func NewListOrdersByCustomerUseCase(factory outbound.UnitOfWorkFactory) *ListByCustomerUseCaseImpl {
	return &ListByCustomerUseCaseImpl{UowFactory: factory}
}

func (uc *ListByCustomerUseCaseImpl) Execute(ctx context.Context, customerID string) ([]Output, error) {
	uow := uc.UowFactory.New()

	found, err := uow.Orders().FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toOutputs(found), nil
}
