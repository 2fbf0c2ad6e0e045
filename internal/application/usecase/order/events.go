package order

import (
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated = "order.created"
	TopicOrderCreated = "orders.created"
)

// CreatedEventPayload is the order.created message body written to the
// outbox and later published by the relay.
type CreatedEventPayload struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	Total      decimal.Decimal    `json:"total"`
	Items      []CreatedEventItem `json:"items"`
}

type CreatedEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
