package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem captures the unit price at creation time. The copy is what
// keeps historical order totals stable when product prices change later.
type OrderItem struct {
	id        string
	orderID   string
	productID string
	quantity  int
	unitPrice decimal.Decimal
}

func NewOrderItem(productID string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, ErrQuantityMustBePos
	}
	if !unitPrice.IsPositive() {
		return nil, ErrPriceMustBePos
	}

	return &OrderItem{
		id:        uuid.NewString(),
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func RestoreOrderItem(id, orderID, productID string, quantity int, unitPrice decimal.Decimal) *OrderItem {
	return &OrderItem{
		id:        id,
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

// Subtotal is always derived, never stored.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) ID() string                 { return i.id }
func (i *OrderItem) OrderID() string            { return i.orderID }
func (i *OrderItem) ProductID() string          { return i.productID }
func (i *OrderItem) Quantity() int              { return i.quantity }
func (i *OrderItem) UnitPrice() decimal.Decimal { return i.unitPrice }

type Order struct {
	id         string
	customerID string
	orderDate  time.Time
	items      []*OrderItem
	total      decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

func NewOrder(customerID string, items []*OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderNeedsItems
	}

	now := time.Now().UTC()
	o := &Order{
		id:         uuid.NewString(),
		customerID: customerID,
		orderDate:  now,
		items:      items,
		createdAt:  now,
		updatedAt:  now,
	}
	o.adoptItems()
	o.calculateTotal()
	return o, nil
}

func RestoreOrder(id, customerID string, orderDate time.Time, items []*OrderItem, createdAt, updatedAt time.Time) *Order {
	o := &Order{
		id:         id,
		customerID: customerID,
		orderDate:  orderDate,
		items:      items,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	o.calculateTotal()
	return o
}

func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidArgument)
	}
	item.orderID = o.id
	o.items = append(o.items, item)
	o.calculateTotal()
	o.updatedAt = time.Now().UTC()
	return nil
}

// RemoveItem refuses to drop the last item: an order can never exist with
// zero items, it can only be replaced wholesale or deleted entirely.
func (o *Order) RemoveItem(itemID string) error {
	if len(o.items) <= 1 {
		return ErrLastItem
	}

	idx := -1
	for i, item := range o.items {
		if item.id == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.calculateTotal()
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) UpdateItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderNeedsItems
	}

	o.items = items
	o.adoptItems()
	o.calculateTotal()
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) adoptItems() {
	for _, item := range o.items {
		item.orderID = o.id
	}
}

// Total is recomputed from scratch on every mutation rather than adjusted
// incrementally, so it cannot drift from the items.
func (o *Order) calculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
}

func (o *Order) ID() string             { return o.id }
func (o *Order) CustomerID() string     { return o.customerID }
func (o *Order) OrderDate() time.Time   { return o.orderDate }
func (o *Order) Items() []*OrderItem    { return o.items }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
