package order

import (
	"context"
	"testing"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOrder places an order through the create workflow so the product
// stock already reflects the reservation.
func seedOrder(t *testing.T, uow *fakeUow, customerID string, items []ItemInput) Output {
	t.Helper()
	out, err := NewCreateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{}).
		Execute(context.Background(), CreateInput{CustomerID: customerID, Items: items})
	require.NoError(t, err)
	// the shared fake uow is finished after create; reopen it and reset
	// the counters so tests only observe their own workflow
	uow.finished = false
	uow.begun = 0
	uow.committed = 0
	uow.rolledBack = 0
	return out
}

func TestUpdateOrder_SwapsReservations(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	productB := seedProduct(t, uow, "Mouse", "4.00", 5)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})
	require.Equal(t, 3, uow.stockOf(productA.ID()))

	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})
	output, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: productB.ID(), Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, 5, uow.stockOf(productA.ID()))
	assert.Equal(t, 4, uow.stockOf(productB.ID()))
	assert.True(t, mustDecimal(t, "4.00").Equal(output.Total))
	require.Len(t, output.Items, 1)
	assert.Equal(t, productB.ID(), output.Items[0].ProductID)
}

func TestUpdateOrder_InsufficientStockRevertsRestoration(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	productB := seedProduct(t, uow, "Mouse", "4.00", 0)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})
	require.Equal(t, 3, uow.stockOf(productA.ID()))

	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})
	_, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: productB.ID(), Quantity: 1}},
	})

	assert.ErrorIs(t, err, entity.ErrInsufficientStock)
	assert.Equal(t, 1, uow.rolledBack)
	// productA's stock was restored inside the transaction; the rollback
	// must take that restoration back as well
	assert.Equal(t, 3, uow.stockOf(productA.ID()))
	assert.Equal(t, 0, uow.stockOf(productB.ID()))
	// the order still holds its original items
	persisted := uow.orders[created.ID]
	require.Len(t, persisted.Items(), 1)
	assert.Equal(t, productA.ID(), persisted.Items()[0].ProductID())
}

func TestUpdateOrder_SkipsRestorationForDeletedProduct(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	productB := seedProduct(t, uow, "Mouse", "4.00", 5)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})

	// productA disappears while the order still references it
	delete(uow.products, productA.ID())

	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})
	output, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: productB.ID(), Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, uow.stockOf(productB.ID()))
	assert.True(t, mustDecimal(t, "8.00").Equal(output.Total))
}

func TestUpdateOrder_NotFound(t *testing.T) {
	uow := newFakeUow()
	seedProduct(t, uow, "Mouse", "4.00", 5)
	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "missing", UpdateInput{
		Items: []ItemInput{{ProductID: "p", Quantity: 1}},
	})

	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
	// the read happens inside the transaction, so even a not-found exits
	// through rollback
	assert.Equal(t, 1, uow.rolledBack)
}

func TestUpdateOrder_NewProductNotFound(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})

	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})
	_, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: "missing", Quantity: 1}},
	})

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	assert.Equal(t, 1, uow.rolledBack)
	assert.Equal(t, 3, uow.stockOf(productA.ID()))
}

func TestUpdateOrder_EmptyItems(t *testing.T) {
	uow := newFakeUow()
	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "any", UpdateInput{})

	assert.ErrorIs(t, err, entity.ErrOrderNeedsItems)
	assert.Zero(t, uow.begun)
}

func TestUpdateOrder_RollbackOnPersistenceFailure(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	productB := seedProduct(t, uow, "Mouse", "4.00", 5)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})
	uow.failOrderUpdate = true

	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, &fakeProductCache{}, nopLogger{})
	_, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: productB.ID(), Quantity: 1}},
	})

	assert.Error(t, err)
	assert.Equal(t, 1, uow.rolledBack)
	assert.Equal(t, 3, uow.stockOf(productA.ID()))
	assert.Equal(t, 5, uow.stockOf(productB.ID()))
}

func TestUpdateOrder_InvalidatesOldAndNewProducts(t *testing.T) {
	uow := newFakeUow()
	customer := seedCustomer(t, uow, "Alice", "alice@example.com")
	productA := seedProduct(t, uow, "Keyboard", "10.00", 5)
	productB := seedProduct(t, uow, "Mouse", "4.00", 5)
	created := seedOrder(t, uow, customer.ID(), []ItemInput{{ProductID: productA.ID(), Quantity: 2}})

	cache := &fakeProductCache{}
	uc := NewUpdateOrderUseCase(&fakeUowFactory{uow}, cache, nopLogger{})
	_, err := uc.Execute(context.Background(), created.ID, UpdateInput{
		Items: []ItemInput{{ProductID: productB.ID(), Quantity: 1}},
	})

	require.NoError(t, err)
	// both the restored and the newly reserved product lost their snapshot
	assert.ElementsMatch(t, []string{productA.ID(), productB.ID()}, cache.invalidated)
}
