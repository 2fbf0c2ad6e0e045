package events

import (
	"context"
	"time"
)

type Event interface {
	GetName() string
	GetDateTime() time.Time
	GetPayload() interface{}
	SetPayload(payload interface{})
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
	DispatchRaw(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}
