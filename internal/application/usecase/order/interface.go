package order

import (
	"context"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (Output, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, orderID string, input UpdateInput) (Output, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, orderID string) error
}

type GetUseCase interface {
	Execute(ctx context.Context, orderID string) (DetailsOutput, error)
}

type ListUseCase interface {
	Execute(ctx context.Context) ([]DetailsOutput, error)
}

type ListByCustomerUseCase interface {
	Execute(ctx context.Context, customerID string) ([]Output, error)
}
