package customer

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type UpdateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Logger     logger.Logger
}

func NewUpdateCustomerUseCase(factory outbound.UnitOfWorkFactory, log logger.Logger) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{UowFactory: factory, Logger: log}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, customerID string, input UpdateInput) (Output, error) {
	uow := uc.UowFactory.New()

	existing, err := uow.Customers().FindByID(ctx, customerID)
	if err != nil {
		return Output{}, err
	}

	normalized, err := entity.NormalizeEmail(input.Email)
	if err != nil {
		return Output{}, err
	}
	holder, err := uow.Customers().FindByEmail(ctx, normalized)
	if err != nil {
		return Output{}, err
	}
	if holder != nil && holder.ID() != customerID {
		return Output{}, fmt.Errorf("%w: %s", entity.ErrEmailInUse, normalized)
	}

	if err := existing.Update(input.Name, input.Email, input.Phone); err != nil {
		return Output{}, err
	}
	if err := uow.Customers().Update(ctx, existing); err != nil {
		return Output{}, err
	}

	uc.Logger.Info(ctx, "customer updated", logger.String("customer_id", customerID))
	return toOutput(existing), nil
}
