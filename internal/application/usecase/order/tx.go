package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

// rollbackOn undoes the open transaction and propagates cause unchanged.
// A failing rollback takes precedence over the cause, which is kept in the
// message for diagnosis.
func rollbackOn(ctx context.Context, uow outbound.UnitOfWork, cause error) error {
	if rbErr := uow.Rollback(ctx); rbErr != nil {
		return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, cause)
	}
	return cause
}

// invalidateProducts drops the cached snapshots of products whose stock a
// committed mutation changed. Best effort: a failed invalidation leaves a
// snapshot that is stale at most until its TTL.
func invalidateProducts(ctx context.Context, cache outbound.ProductCache, log logger.Logger, productIDs []string) {
	for _, id := range productIDs {
		if err := cache.Invalidate(ctx, id); err != nil {
			log.Warn(ctx, "product cache invalidation failed",
				logger.String("product_id", id),
				logger.WithError(err),
			)
		}
	}
}
