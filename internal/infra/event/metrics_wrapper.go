package event

import (
	"context"
	"errors"
	"time"

	"github.com/DioGolang/GoCommerce/pkg/metrics"
	"github.com/sony/gobreaker"
)

// WrapResilientConsumer bounds the handler with a timeout and a circuit
// breaker, recording execution metrics either way.
func WrapResilientConsumer(
	m metrics.Metrics,
	handlerName string,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		start := time.Now()

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (interface{}, error) {
			return nil, next(ctx, msg, headers)
		})

		if errors.Is(err, gobreaker.ErrOpenState) {
			m.RecordUseCaseExecution(handlerName, false, time.Since(start))
			return err
		}

		m.RecordUseCaseExecution(handlerName, err == nil, time.Since(start))
		return err
	}
}
