package event

import "context"

// MessageHandler processes one delivery. Returning nil acks the message;
// an error leaves the decision to the consumer loop.
type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error
