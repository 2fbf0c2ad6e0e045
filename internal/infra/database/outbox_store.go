package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const (
	OutboxStatusPending    = "pending"
	OutboxStatusProcessing = "processing"
	OutboxStatusPublished  = "published"
	OutboxStatusFailed     = "failed"
)

type OutboxEvent struct {
	ID          string
	AggregateID string
	EventType   string
	Payload     []byte
	Topic       string
}

// OutboxStore owns the lifecycle queries of outbox_events rows. Rows are
// written by OrderRepositoryImpl.SaveOutboxEvent inside the business
// transaction; everything after that goes through here.
type OutboxStore struct {
	db *sql.DB
}

func NewOutboxStore(db *sql.DB) *OutboxStore {
	return &OutboxStore{db: db}
}

// FetchAndClaim moves up to limit pending rows to processing and returns
// them, all in one short transaction. SKIP LOCKED keeps concurrent relays
// from claiming the same rows.
func (s *OutboxStore) FetchAndClaim(ctx context.Context, limit int) ([]OutboxEvent, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, aggregate_id, event_type, payload, topic
		 FROM outbox_events
		 WHERE status = $1
		 ORDER BY created_at
		 LIMIT $2
		 FOR UPDATE SKIP LOCKED`,
		OutboxStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch pending outbox events: %w", err)
	}
	defer rows.Close()

	var batch []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.EventType, &e.Payload, &e.Topic); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		batch = append(batch, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, nil
	}

	ids := make([]string, len(batch))
	for i, e := range batch {
		ids[i] = e.ID
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE outbox_events SET status = $1, claimed_at = $2 WHERE id = ANY($3)",
		OutboxStatusProcessing, time.Now().UTC(), pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("claim outbox events: %w", err)
	}

	return batch, tx.Commit()
}

func (s *OutboxStore) MarkPublished(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE outbox_events SET status = $1, published_at = $2 WHERE id = $3",
		OutboxStatusPublished, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}

func (s *OutboxStore) MarkFailed(ctx context.Context, id string, cause error) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE outbox_events
		 SET status = $1, attempts = attempts + 1, error_msg = $2
		 WHERE id = $3`,
		OutboxStatusFailed, cause.Error(), id)
	if err != nil {
		return fmt.Errorf("mark outbox failed: %w", err)
	}
	return nil
}

// ResetStuck re-queues rows claimed before the cutoff whose relay died
// mid-flight, plus failed rows, for another attempt.
func (s *OutboxStore) ResetStuck(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().UTC().Add(-olderThan)
	_, err := s.db.ExecContext(ctx,
		`UPDATE outbox_events
		 SET status = $1, claimed_at = NULL
		 WHERE (status = $2 AND claimed_at < $3) OR status = $4`,
		OutboxStatusPending, OutboxStatusProcessing, cutoff, OutboxStatusFailed)
	if err != nil {
		return fmt.Errorf("reset stuck outbox events: %w", err)
	}
	return nil
}

func (s *OutboxStore) DeleteOld(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().UTC().Add(-olderThan)
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM outbox_events WHERE status = $1 AND published_at < $2",
		OutboxStatusPublished, cutoff)
	if err != nil {
		return fmt.Errorf("delete old outbox events: %w", err)
	}
	return nil
}
