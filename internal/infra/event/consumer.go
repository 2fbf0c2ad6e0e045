package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/DioGolang/GoCommerce/pkg/logger"
	carrier "github.com/DioGolang/GoCommerce/pkg/otel"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrBadMessage marks a delivery as permanently unprocessable. The consumer
// drops it instead of requeueing.
var ErrBadMessage = errors.New("unprocessable message")

// Consumer runs a delivery loop for one queue, recreating the trace context
// from the message headers before handing off to the handler.
type Consumer struct {
	Conn   *amqp.Connection
	Logger logger.Logger
}

func NewConsumer(conn *amqp.Connection, log logger.Logger) *Consumer {
	return &Consumer{Conn: conn, Logger: log}
}

func (c *Consumer) Start(ctx context.Context, queueName, routingKey string, handler MessageHandler) error {
	ch, err := c.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch, queueName, routingKey); err != nil {
		return fmt.Errorf("setup topology: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	c.Logger.Info(ctx, "waiting for messages", logger.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handleDelivery(ctx, queueName, d, handler)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, queueName string, d amqp.Delivery, handler MessageHandler) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier.AMQPHeadersCarrier(d.Headers))

	tracer := otel.GetTracerProvider().Tracer("worker-tracer")
	ctx, span := tracer.Start(ctx, "ProcessMessage", trace.WithAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.message_id", d.MessageId),
	))
	defer span.End()

	err := handler(ctx, d.Body, d.Headers)
	if errors.Is(err, ErrBadMessage) {
		c.Logger.Error(ctx, "dropping unprocessable message",
			logger.String("queue", queueName),
			logger.WithError(err),
		)
		span.RecordError(err)
		d.Nack(false, false)
		return
	}
	if err != nil {
		c.Logger.Warn(ctx, "handler failed, requeueing",
			logger.String("queue", queueName),
			logger.WithError(err),
		)
		span.RecordError(err)
		d.Nack(false, true)
		return
	}

	d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel, queueName, routingKey string) error {
	if _, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	return ch.QueueBind(queueName, routingKey, exchangeName, false, nil)
}
