package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/pkg/events"
	carrier "github.com/DioGolang/GoCommerce/pkg/otel"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

const exchangeName = "amq.direct"

// Dispatcher publishes events to RabbitMQ. The trace context rides in the
// message headers so consumers can continue the span.
type Dispatcher struct {
	RabbitMQChannel *amqp.Channel
}

func NewDispatcher(ch *amqp.Channel) *Dispatcher {
	return &Dispatcher{RabbitMQChannel: ch}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	return d.DispatchRaw(ctx, event.GetName(), payload, map[string]string{
		"x-event-name": event.GetName(),
	})
}

func (d *Dispatcher) DispatchRaw(ctx context.Context, topic string, payload []byte, headers map[string]string) error {
	table := make(amqp.Table, len(headers))
	for k, v := range headers {
		table[k] = v
	}
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(table))

	return d.RabbitMQChannel.PublishWithContext(
		ctx,
		exchangeName,
		topic,
		false,
		false,
		amqp.Publishing{
			Headers:     table,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}
