package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (l nopLogger) With(...logger.Field) logger.Logger           { return l }

func cloneProduct(p *entity.Product) *entity.Product {
	return entity.RestoreProduct(p.ID(), p.Name(), p.Price(), p.Description(), p.Stock(), p.CreatedAt(), p.UpdatedAt())
}

func cloneOrder(o *entity.Order) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, entity.RestoreOrderItem(it.ID(), it.OrderID(), it.ProductID(), it.Quantity(), it.UnitPrice()))
	}
	return entity.RestoreOrder(o.ID(), o.CustomerID(), o.OrderDate(), items, o.CreatedAt(), o.UpdatedAt())
}

type outboxRecord struct {
	eventID     string
	aggregateID string
	eventType   string
	payload     []byte
	topic       string
}

// fakeUow is an in-memory unit of work. It snapshots its stores on Begin
// and restores them on Rollback so the atomicity assertions in the tests
// observe real revert behavior, not just call counts.
type fakeUow struct {
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	orders    map[string]*entity.Order
	outbox    []outboxRecord

	active     bool
	finished   bool
	begun      int
	committed  int
	rolledBack int

	snapProducts map[string]*entity.Product
	snapOrders   map[string]*entity.Order
	snapOutbox   int

	failProductUpdateOn string
	failOrderInsert     bool
	failOrderUpdate     bool
	failOrderDelete     bool
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		customers: make(map[string]*entity.Customer),
		products:  make(map[string]*entity.Product),
		orders:    make(map[string]*entity.Order),
	}
}

func (u *fakeUow) addCustomer(c *entity.Customer) { u.customers[c.ID()] = c }
func (u *fakeUow) addProduct(p *entity.Product)   { u.products[p.ID()] = cloneProduct(p) }
func (u *fakeUow) addOrder(o *entity.Order)       { u.orders[o.ID()] = cloneOrder(o) }

func (u *fakeUow) stockOf(productID string) int { return u.products[productID].Stock() }

func (u *fakeUow) Customers() outbound.CustomerRepository { return &fakeCustomerRepo{u} }
func (u *fakeUow) Products() outbound.ProductRepository   { return &fakeProductRepo{u} }
func (u *fakeUow) Orders() outbound.OrderRepository       { return &fakeOrderRepo{u} }

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.finished {
		return errors.New("unit of work finished")
	}
	if u.active {
		return nil
	}
	u.active = true
	u.begun++

	u.snapProducts = make(map[string]*entity.Product, len(u.products))
	for id, p := range u.products {
		u.snapProducts[id] = cloneProduct(p)
	}
	u.snapOrders = make(map[string]*entity.Order, len(u.orders))
	for id, o := range u.orders {
		u.snapOrders[id] = cloneOrder(o)
	}
	u.snapOutbox = len(u.outbox)
	return nil
}

func (u *fakeUow) Commit(ctx context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	u.active = false
	u.finished = true
	u.committed++
	return nil
}

func (u *fakeUow) Rollback(ctx context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	u.active = false
	u.finished = true
	u.rolledBack++
	u.products = u.snapProducts
	u.orders = u.snapOrders
	u.outbox = u.outbox[:u.snapOutbox]
	return nil
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) New() outbound.UnitOfWork { return f.uow }

type fakeCustomerRepo struct{ u *fakeUow }

func (r *fakeCustomerRepo) FindByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.u.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.u.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.u.customers[id]
	return ok, nil
}

func (r *fakeCustomerRepo) FindAll(context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.u.customers))
	for _, c := range r.u.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Insert(_ context.Context, c *entity.Customer) error {
	r.u.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.u.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.u.customers, id)
	return nil
}

type fakeProductRepo struct{ u *fakeUow }

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.u.products[id]
	if !ok {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrProductNotFound)
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.u.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.u.products))
	for _, p := range r.u.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *fakeProductRepo) Insert(_ context.Context, p *entity.Product) error {
	r.u.products[p.ID()] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if r.u.failProductUpdateOn != "" && r.u.failProductUpdateOn == p.ID() {
		return errors.New("storage failure: product update")
	}
	r.u.products[p.ID()] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.u.products, id)
	return nil
}

type fakeOrderRepo struct{ u *fakeUow }

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.u.orders[id]
	if !ok {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrOrderNotFound)
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) FindByIDWithDetails(_ context.Context, id string) (*outbound.OrderDetails, error) {
	o, ok := r.u.orders[id]
	if !ok {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrOrderNotFound)
	}
	details := &outbound.OrderDetails{
		Order:        cloneOrder(o),
		ProductNames: make(map[string]string),
	}
	if c, ok := r.u.customers[o.CustomerID()]; ok {
		details.CustomerName = c.Name()
		details.CustomerEmail = c.Email()
	}
	for _, item := range o.Items() {
		if p, ok := r.u.products[item.ProductID()]; ok {
			details.ProductNames[p.ID()] = p.Name()
		}
	}
	return details, nil
}

func (r *fakeOrderRepo) FindAllWithDetails(ctx context.Context) ([]*outbound.OrderDetails, error) {
	out := make([]*outbound.OrderDetails, 0, len(r.u.orders))
	for id := range r.u.orders {
		details, err := r.FindByIDWithDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, details)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Order.OrderDate().After(out[j].Order.OrderDate())
	})
	return out, nil
}

func (r *fakeOrderRepo) FindByCustomerID(_ context.Context, customerID string) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0)
	for _, o := range r.u.orders {
		if o.CustomerID() == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.u.orders))
	for _, o := range r.u.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *fakeOrderRepo) Insert(_ context.Context, o *entity.Order) error {
	if r.u.failOrderInsert {
		return errors.New("storage failure: order insert")
	}
	r.u.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if r.u.failOrderUpdate {
		return errors.New("storage failure: order update")
	}
	r.u.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if r.u.failOrderDelete {
		return errors.New("storage failure: order delete")
	}
	delete(r.u.orders, id)
	return nil
}

func (r *fakeOrderRepo) SaveOutboxEvent(_ context.Context, eventID, aggregateID, eventType string, payload []byte, topic string) error {
	r.u.outbox = append(r.u.outbox, outboxRecord{
		eventID:     eventID,
		aggregateID: aggregateID,
		eventType:   eventType,
		payload:     payload,
		topic:       topic,
	})
	return nil
}

// fakeProductCache records which product ids get invalidated.
type fakeProductCache struct {
	invalidated []string
	failWith    error
}

func (c *fakeProductCache) Get(context.Context, string) (*entity.Product, error) { return nil, nil }
func (c *fakeProductCache) Set(context.Context, *entity.Product) error           { return nil }

func (c *fakeProductCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	return c.failWith
}
