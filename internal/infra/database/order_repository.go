package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type OrderRepositoryImpl struct {
	uow *UnitOfWorkImpl
}

type orderRow struct {
	id         string
	customerID string
	orderDate  time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.uow.executor().QueryRowContext(ctx,
		"SELECT id, customer_id, order_date, created_at, updated_at FROM orders WHERE id = $1", id)

	var o orderRow
	err := row.Scan(&o.id, &o.customerID, &o.orderDate, &o.createdAt, &o.updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.RestoreOrder(o.id, o.customerID, o.orderDate, items, o.createdAt, o.updatedAt), nil
}

// FindByIDWithDetails joins the order, its items, the customer and the
// current product names in a single query. One row comes back per item.
func (r *OrderRepositoryImpl) FindByIDWithDetails(ctx context.Context, id string) (*outbound.OrderDetails, error) {
	rows, err := r.uow.executor().QueryContext(ctx,
		`SELECT o.id, o.customer_id, o.order_date, o.created_at, o.updated_at,
		        c.name, c.email,
		        i.id, i.product_id, i.quantity, i.unit_price,
		        p.name
		 FROM orders o
		 JOIN customers c ON c.id = o.customer_id
		 JOIN order_items i ON i.order_id = o.id
		 LEFT JOIN products p ON p.id = i.product_id
		 WHERE o.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find order details: %w", err)
	}
	defer rows.Close()

	var (
		o            orderRow
		details      outbound.OrderDetails
		items        []*entity.OrderItem
		productNames = make(map[string]string)
	)
	for rows.Next() {
		var (
			itemID      string
			productID   string
			quantity    int
			unitPrice   decimal.Decimal
			productName sql.NullString
		)
		err := rows.Scan(&o.id, &o.customerID, &o.orderDate, &o.createdAt, &o.updatedAt,
			&details.CustomerName, &details.CustomerEmail,
			&itemID, &productID, &quantity, &unitPrice,
			&productName)
		if err != nil {
			return nil, fmt.Errorf("scan order details: %w", err)
		}
		items = append(items, entity.RestoreOrderItem(itemID, o.id, productID, quantity, unitPrice))
		if productName.Valid {
			productNames[productID] = productName.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrOrderNotFound)
	}

	details.Order = entity.RestoreOrder(o.id, o.customerID, o.orderDate, items, o.createdAt, o.updatedAt)
	details.ProductNames = productNames
	return &details, nil
}

// FindAllWithDetails runs the same join as FindByIDWithDetails over every
// order, then regroups the item rows per order.
func (r *OrderRepositoryImpl) FindAllWithDetails(ctx context.Context) ([]*outbound.OrderDetails, error) {
	rows, err := r.uow.executor().QueryContext(ctx,
		`SELECT o.id, o.customer_id, o.order_date, o.created_at, o.updated_at,
		        c.name, c.email,
		        i.id, i.product_id, i.quantity, i.unit_price,
		        p.name
		 FROM orders o
		 JOIN customers c ON c.id = o.customer_id
		 JOIN order_items i ON i.order_id = o.id
		 LEFT JOIN products p ON p.id = i.product_id
		 ORDER BY o.order_date DESC, o.id`)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()

	type orderGroup struct {
		row           orderRow
		customerName  string
		customerEmail string
		items         []*entity.OrderItem
		productNames  map[string]string
	}
	var (
		groups []*orderGroup
		index  = make(map[string]*orderGroup)
	)
	for rows.Next() {
		var (
			o             orderRow
			customerName  string
			customerEmail string
			itemID        string
			productID     string
			quantity      int
			unitPrice     decimal.Decimal
			productName   sql.NullString
		)
		err := rows.Scan(&o.id, &o.customerID, &o.orderDate, &o.createdAt, &o.updatedAt,
			&customerName, &customerEmail,
			&itemID, &productID, &quantity, &unitPrice,
			&productName)
		if err != nil {
			return nil, fmt.Errorf("scan order details: %w", err)
		}

		g, ok := index[o.id]
		if !ok {
			g = &orderGroup{
				row:           o,
				customerName:  customerName,
				customerEmail: customerEmail,
				productNames:  make(map[string]string),
			}
			index[o.id] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, entity.RestoreOrderItem(itemID, o.id, productID, quantity, unitPrice))
		if productName.Valid {
			g.productNames[productID] = productName.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	details := make([]*outbound.OrderDetails, 0, len(groups))
	for _, g := range groups {
		details = append(details, &outbound.OrderDetails{
			Order: entity.RestoreOrder(g.row.id, g.row.customerID, g.row.orderDate,
				g.items, g.row.createdAt, g.row.updatedAt),
			CustomerName:  g.customerName,
			CustomerEmail: g.customerEmail,
			ProductNames:  g.productNames,
		})
	}
	return details, nil
}

func (r *OrderRepositoryImpl) FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Order, error) {
	return r.findMany(ctx,
		"SELECT id, customer_id, order_date, created_at, updated_at FROM orders WHERE customer_id = $1 ORDER BY order_date DESC",
		customerID)
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return r.findMany(ctx,
		"SELECT id, customer_id, order_date, created_at, updated_at FROM orders ORDER BY order_date DESC")
}

func (r *OrderRepositoryImpl) findMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.uow.executor().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var o orderRow
		if err := rows.Scan(&o.id, &o.customerID, &o.orderDate, &o.createdAt, &o.updatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		items, err := r.findItems(ctx, o.id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, entity.RestoreOrder(o.id, o.customerID, o.orderDate, items, o.createdAt, o.updatedAt))
	}
	return orders, rows.Err()
}

func (r *OrderRepositoryImpl) findItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.uow.executor().QueryContext(ctx,
		"SELECT id, product_id, quantity, unit_price FROM order_items WHERE order_id = $1 ORDER BY created_at",
		orderID)
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var (
			id        string
			productID string
			quantity  int
			unitPrice decimal.Decimal
		)
		if err := rows.Scan(&id, &productID, &quantity, &unitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, entity.RestoreOrderItem(id, orderID, productID, quantity, unitPrice))
	}
	return items, rows.Err()
}

func (r *OrderRepositoryImpl) Insert(ctx context.Context, order *entity.Order) error {
	_, err := r.uow.executor().ExecContext(ctx,
		`INSERT INTO orders (id, customer_id, order_date, total, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID(), order.CustomerID(), order.OrderDate(), order.Total(),
		order.CreatedAt(), order.UpdatedAt())
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, order)
}

// Update rewrites the stored item collection wholesale. Item-level diffing
// buys nothing at this row count.
func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	res, err := r.uow.executor().ExecContext(ctx,
		"UPDATE orders SET total = $2, updated_at = $3 WHERE id = $1",
		order.ID(), order.Total(), order.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if err := requireAffected(res, entity.ErrOrderNotFound); err != nil {
		return err
	}

	if _, err := r.uow.executor().ExecContext(ctx,
		"DELETE FROM order_items WHERE order_id = $1", order.ID()); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	return r.insertItems(ctx, order)
}

func (r *OrderRepositoryImpl) insertItems(ctx context.Context, order *entity.Order) error {
	for _, item := range order.Items() {
		_, err := r.uow.executor().ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID(), order.ID(), item.ProductID(), item.Quantity(), item.UnitPrice(), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id string) error {
	// order_items rows go with the order via ON DELETE CASCADE
	res, err := r.uow.executor().ExecContext(ctx,
		"DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return requireAffected(res, entity.ErrOrderNotFound)
}

func (r *OrderRepositoryImpl) SaveOutboxEvent(ctx context.Context, eventID, aggregateID, eventType string, payload []byte, topic string) error {
	_, err := r.uow.executor().ExecContext(ctx,
		`INSERT INTO outbox_events (id, aggregate_id, event_type, payload, topic, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		eventID, aggregateID, eventType, payload, topic, OutboxStatusPending, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save outbox event: %w", err)
	}
	return nil
}
