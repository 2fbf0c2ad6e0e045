package customer

import (
	"context"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type DeleteUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Logger     logger.Logger
}

func NewDeleteCustomerUseCase(factory outbound.UnitOfWorkFactory, log logger.Logger) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{UowFactory: factory, Logger: log}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, customerID string) error {
	uow := uc.UowFactory.New()

	if _, err := uow.Customers().FindByID(ctx, customerID); err != nil {
		return err
	}
	if err := uow.Customers().Delete(ctx, customerID); err != nil {
		return err
	}

	uc.Logger.Info(ctx, "customer deleted", logger.String("customer_id", customerID))
	return nil
}
