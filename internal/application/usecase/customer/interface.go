package customer

import (
	"context"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (Output, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, customerID string, input UpdateInput) (Output, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, customerID string) error
}

type GetUseCase interface {
	Execute(ctx context.Context, customerID string) (Output, error)
}

type ListUseCase interface {
	Execute(ctx context.Context) ([]Output, error)
}
