package order

import (
	"context"
	"errors"
	"time"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/metrics"
)

func mutationStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case entity.IsConflict(err):
		return "conflict"
	case entity.IsNotFound(err):
		return "not_found"
	case entity.IsInvalidArgument(err):
		return "invalid"
	default:
		return "error"
	}
}

type CreateOrderMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateOrderMetricsDecorator) Execute(ctx context.Context, input CreateInput) (Output, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateOrder", err == nil, time.Since(start))
	d.Metrics.RecordOrderCreated(mutationStatus(err))
	if errors.Is(err, entity.ErrInsufficientStock) {
		d.Metrics.RecordStockConflict("create")
	}
	return output, err
}

type UpdateOrderMetricsDecorator struct {
	Next    UpdateUseCase
	Metrics metrics.Metrics
}

func (d *UpdateOrderMetricsDecorator) Execute(ctx context.Context, orderID string, input UpdateInput) (Output, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, orderID, input)
	d.Metrics.RecordUseCaseExecution("UpdateOrder", err == nil, time.Since(start))
	d.Metrics.RecordOrderUpdated(mutationStatus(err))
	if errors.Is(err, entity.ErrInsufficientStock) {
		d.Metrics.RecordStockConflict("update")
	}
	return output, err
}

type DeleteOrderMetricsDecorator struct {
	Next    DeleteUseCase
	Metrics metrics.Metrics
}

func (d *DeleteOrderMetricsDecorator) Execute(ctx context.Context, orderID string) error {
	start := time.Now()
	err := d.Next.Execute(ctx, orderID)
	d.Metrics.RecordUseCaseExecution("DeleteOrder", err == nil, time.Since(start))
	d.Metrics.RecordOrderDeleted(mutationStatus(err))
	return err
}
