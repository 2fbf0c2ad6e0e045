package events

import "time"

type BaseEvent struct {
	name     string
	dateTime time.Time
	payload  interface{}
}

func New(name string, payload interface{}) *BaseEvent {
	return &BaseEvent{
		name:     name,
		dateTime: time.Now().UTC(),
		payload:  payload,
	}
}

func (e *BaseEvent) GetName() string                { return e.name }
func (e *BaseEvent) GetDateTime() time.Time         { return e.dateTime }
func (e *BaseEvent) GetPayload() interface{}        { return e.payload }
func (e *BaseEvent) SetPayload(payload interface{}) { e.payload = payload }
