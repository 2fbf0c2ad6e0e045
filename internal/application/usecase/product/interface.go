package product

import (
	"context"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (Output, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, productID string, input UpdateInput) (Output, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, productID string) error
}

type GetUseCase interface {
	Execute(ctx context.Context, productID string) (Output, error)
}

type ListUseCase interface {
	Execute(ctx context.Context) ([]Output, error)
}
