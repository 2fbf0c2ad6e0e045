package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/internal/application/usecase/order"
	"github.com/DioGolang/GoCommerce/pkg/events"
	"github.com/DioGolang/GoCommerce/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const TopicOrderProcessed = "orders.processed"

// OrderCreatedHandler keeps per-product sales counters in Redis and emits a
// confirmation event once an order.created message has been absorbed.
type OrderCreatedHandler struct {
	Redis      *redis.Client
	Dispatcher events.EventDispatcher
	Logger     logger.Logger
}

func NewOrderCreatedHandler(client *redis.Client, disp events.EventDispatcher, log logger.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{Redis: client, Dispatcher: disp, Logger: log}
}

type orderProcessedPayload struct {
	OrderID     string    `json:"order_id"`
	ProcessedAt time.Time `json:"processed_at"`
}

func (h *OrderCreatedHandler) Handle(ctx context.Context, msg []byte, _ map[string]interface{}) error {
	var payload order.CreatedEventPayload
	if err := json.Unmarshal(msg, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	}

	pipe := h.Redis.Pipeline()
	pipe.Incr(ctx, "stats:orders:processed")
	for _, item := range payload.Items {
		pipe.IncrBy(ctx, "stats:product:units_sold:"+item.ProductID, int64(item.Quantity))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record sales counters: %w", err)
	}

	h.Logger.Info(ctx, "order absorbed into sales stats",
		logger.String("order_id", payload.OrderID),
		logger.Int("items", len(payload.Items)),
	)

	confirmation := events.New(TopicOrderProcessed, orderProcessedPayload{
		OrderID:     payload.OrderID,
		ProcessedAt: time.Now().UTC(),
	})
	if err := h.Dispatcher.Dispatch(ctx, confirmation); err != nil {
		// counters are already in; the confirmation is best effort
		h.Logger.Warn(ctx, "failed to publish confirmation event",
			logger.String("order_id", payload.OrderID),
			logger.WithError(err),
		)
	}
	return nil
}
