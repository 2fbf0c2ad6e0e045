package event

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type RedisIdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops deliveries whose event id was already processed
// within ttl. The dedup key is taken from the x-event-id header, falling
// back to a hash of the body. Fails closed when the store is unreachable.
func WrapIdempotency(
	log logger.Logger,
	store RedisIdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var eventID string
		if v, ok := headers["x-event-id"]; ok {
			eventID = fmt.Sprintf("%v", v)
		}
		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)

		saved, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			log.Error(ctx, "idempotency store unreachable", logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}
		if !saved {
			log.Info(ctx, "duplicate event dropped",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			return nil
		}

		err = next(ctx, msg, headers)
		if err != nil {
			// release the key so the redelivery is not mistaken for a
			// duplicate
			log.Warn(ctx, "handler failed, releasing dedup lock",
				logger.String("key", key),
				logger.WithError(err),
			)
			if delErr := store.Del(ctx, key); delErr != nil {
				log.Error(ctx, "failed to release dedup lock",
					logger.String("key", key),
					logger.WithError(delErr),
				)
			}
		}
		return err
	}
}
