package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoCommerce/internal/infra/database"
	"github.com/DioGolang/GoCommerce/pkg/events"
	"github.com/DioGolang/GoCommerce/pkg/logger"
	"github.com/DioGolang/GoCommerce/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// OutboxRelay drains outbox_events and publishes them to the broker. Claiming
// happens in a short transaction; the network I/O runs outside it, fanned out
// over a bounded worker group.
type OutboxRelay struct {
	store      *database.OutboxStore
	dispatcher events.EventDispatcher
	logger     logger.Logger
	metrics    metrics.Metrics
	batchSize  int
	workers    int
}

func NewOutboxRelay(store *database.OutboxStore, disp events.EventDispatcher, log logger.Logger, m metrics.Metrics) *OutboxRelay {
	return &OutboxRelay{
		store:      store,
		dispatcher: disp,
		logger:     log,
		metrics:    m,
		batchSize:  100,
		workers:    10,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.processBatch(ctx)
		}
	}
}

func (r *OutboxRelay) processBatch(ctx context.Context) {
	batch, err := r.store.FetchAndClaim(ctx, r.batchSize)
	if err != nil {
		r.logger.Error(ctx, "failed to claim outbox batch", logger.WithError(err))
		return
	}
	if len(batch) == 0 {
		return
	}
	start := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, evt := range batch {
		g.Go(func() error {
			return r.publishOne(gCtx, evt)
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error(ctx, "outbox batch had errors", logger.WithError(err))
		return
	}
	r.logger.Debug(ctx, "outbox batch published",
		logger.Int("events", len(batch)),
		logger.Float64("elapsed_seconds", time.Since(start).Seconds()),
	)
}

func (r *OutboxRelay) publishOne(ctx context.Context, evt database.OutboxEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	headers := map[string]string{
		"x-event-id":     evt.ID,
		"x-event-name":   evt.EventType,
		"x-aggregate-id": evt.AggregateID,
	}

	err := r.dispatcher.DispatchRaw(ctx, evt.Topic, evt.Payload, headers)
	if err != nil {
		r.logger.Warn(ctx, "failed to publish outbox event",
			logger.String("event_id", evt.ID),
			logger.WithError(err))
		r.metrics.IncOutboxEventsProcessed("failed")

		// run even when ctx already expired; losing the status update
		// would strand the row in processing until the rescuer
		return r.store.MarkFailed(context.WithoutCancel(ctx), evt.ID, err)
	}

	r.metrics.IncOutboxEventsProcessed("published")
	return r.store.MarkPublished(context.WithoutCancel(ctx), evt.ID)
}

// RunRescuer re-queues rows stranded by a crashed relay and prunes published
// rows past their retention.
func (r *OutboxRelay) RunRescuer(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.store.ResetStuck(ctx, 5*time.Minute); err != nil {
				r.logger.Error(ctx, "failed to reset stuck outbox events", logger.WithError(err))
			}
			if err := r.store.DeleteOld(ctx, 7*24*time.Hour); err != nil {
				r.logger.Error(ctx, "outbox cleanup failed", logger.WithError(err))
			}
		}
	}
}
