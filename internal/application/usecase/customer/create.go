package customer

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type CreateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Logger     logger.Logger
}

func NewCreateCustomerUseCase(factory outbound.UnitOfWorkFactory, log logger.Logger) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{UowFactory: factory, Logger: log}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	uow := uc.UowFactory.New()

	// Uniqueness is checked against the normalized address, so lookups are
	// case-insensitive by construction.
	normalized, err := entity.NormalizeEmail(input.Email)
	if err != nil {
		return Output{}, err
	}
	existing, err := uow.Customers().FindByEmail(ctx, normalized)
	if err != nil {
		return Output{}, err
	}
	if existing != nil {
		uc.Logger.Warn(ctx, "email already registered", logger.String("email", normalized))
		return Output{}, fmt.Errorf("%w: %s", entity.ErrEmailInUse, normalized)
	}

	newCustomer, err := entity.NewCustomer(input.Name, input.Email, input.Phone)
	if err != nil {
		return Output{}, err
	}
	if err := uow.Customers().Insert(ctx, newCustomer); err != nil {
		return Output{}, err
	}

	uc.Logger.Info(ctx, "customer created", logger.String("customer_id", newCustomer.ID()))
	return toOutput(newCustomer), nil
}
