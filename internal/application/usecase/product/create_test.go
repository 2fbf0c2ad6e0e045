package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (l nopLogger) With(...logger.Field) logger.Logger           { return l }

type fakeUow struct {
	products map[string]*entity.Product
}

func newFakeUow() *fakeUow {
	return &fakeUow{products: make(map[string]*entity.Product)}
}

func (u *fakeUow) Customers() outbound.CustomerRepository { return nil }
func (u *fakeUow) Products() outbound.ProductRepository   { return &fakeProductRepo{u} }
func (u *fakeUow) Orders() outbound.OrderRepository       { return nil }
func (u *fakeUow) Begin(context.Context) error            { return nil }
func (u *fakeUow) Commit(context.Context) error           { return nil }
func (u *fakeUow) Rollback(context.Context) error         { return nil }

type fakeUowFactory struct{ uow *fakeUow }

func (f *fakeUowFactory) New() outbound.UnitOfWork { return f.uow }

type fakeProductRepo struct{ u *fakeUow }

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.u.products[id]
	if !ok {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrProductNotFound)
	}
	return p, nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.u.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.u.products))
	for _, p := range r.u.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Insert(_ context.Context, p *entity.Product) error {
	r.u.products[p.ID()] = p
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.u.products[p.ID()] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.u.products, id)
	return nil
}

type fakeCache struct {
	store       map[string]*entity.Product
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*entity.Product)}
}

func (c *fakeCache) Get(_ context.Context, id string) (*entity.Product, error) {
	return c.store[id], nil
}

func (c *fakeCache) Set(_ context.Context, p *entity.Product) error {
	c.store[p.ID()] = p
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id string) error {
	delete(c.store, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func TestCreateProduct(t *testing.T) {
	uow := newFakeUow()
	uc := NewCreateProductUseCase(&fakeUowFactory{uow}, nopLogger{})

	output, err := uc.Execute(context.Background(), CreateInput{
		Name:  "Keyboard",
		Price: decimal.NewFromFloat(49.90),
		Stock: 10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Len(t, uow.products, 1)
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateInput
		expectedErr error
	}{
		{"Should return error when name is empty", CreateInput{Price: decimal.NewFromInt(1), Stock: 1}, entity.ErrNameIsRequired},
		{"Should return error when price is zero", CreateInput{Name: "P", Stock: 1}, entity.ErrPriceMustBePos},
		{"Should return error when stock is negative", CreateInput{Name: "P", Price: decimal.NewFromInt(1), Stock: -1}, entity.ErrStockMustBePos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUow()
			uc := NewCreateProductUseCase(&fakeUowFactory{uow}, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, uow.products)
		})
	}
}

func TestGetProduct_CacheAside(t *testing.T) {
	uow := newFakeUow()
	cache := newFakeCache()
	created, err := NewCreateProductUseCase(&fakeUowFactory{uow}, nopLogger{}).
		Execute(context.Background(), CreateInput{Name: "Keyboard", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)

	uc := NewGetProductUseCase(&fakeUowFactory{uow}, cache, nopLogger{})

	// miss populates the cache
	first, err := uc.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, cache.store, created.ID)

	// hit is served without touching the repository
	delete(uow.products, created.ID)
	second, err := uc.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
}

func TestUpdateProduct_InvalidatesCache(t *testing.T) {
	uow := newFakeUow()
	cache := newFakeCache()
	created, err := NewCreateProductUseCase(&fakeUowFactory{uow}, nopLogger{}).
		Execute(context.Background(), CreateInput{Name: "Keyboard", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)

	uc := NewUpdateProductUseCase(&fakeUowFactory{uow}, cache, nopLogger{})
	_, err = uc.Execute(context.Background(), created.ID, UpdateInput{
		Name:  "Keyboard v2",
		Price: decimal.NewFromInt(12),
		Stock: 5,
	})

	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, created.ID)
}

func TestUpdateProduct_RevalidatesAllFields(t *testing.T) {
	uow := newFakeUow()
	cache := newFakeCache()
	created, err := NewCreateProductUseCase(&fakeUowFactory{uow}, nopLogger{}).
		Execute(context.Background(), CreateInput{Name: "Keyboard", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)

	uc := NewUpdateProductUseCase(&fakeUowFactory{uow}, cache, nopLogger{})
	_, err = uc.Execute(context.Background(), created.ID, UpdateInput{
		Name:  "Keyboard v2",
		Price: decimal.Zero,
		Stock: 5,
	})

	assert.ErrorIs(t, err, entity.ErrPriceMustBePos)
	assert.Equal(t, "Keyboard", uow.products[created.ID].Name())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	uow := newFakeUow()
	uc := NewDeleteProductUseCase(&fakeUowFactory{uow}, newFakeCache(), nopLogger{})

	err := uc.Execute(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}
