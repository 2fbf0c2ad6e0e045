package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
	"github.com/google/uuid"
)

type CreateUseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	Cache      outbound.ProductCache
	Logger     logger.Logger
}

func NewCreateOrderUseCase(factory outbound.UnitOfWorkFactory, cache outbound.ProductCache, log logger.Logger) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		UowFactory: factory,
		Cache:      cache,
		Logger:     log,
	}
}

// Execute runs the order-creation workflow in two phases. The validating
// phase runs without a transaction: a failure there leaves every aggregate
// untouched. Only once the whole request is known to be satisfiable does
// the mutating phase open the transaction, reserve stock and persist.
func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	uc.Logger.Info(ctx, "creating order", logger.String("customer_id", input.CustomerID))

	if len(input.Items) == 0 {
		return Output{}, entity.ErrOrderNeedsItems
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return Output{}, entity.ErrQuantityMustBePos
		}
	}

	uow := uc.UowFactory.New()

	exists, err := uow.Customers().Exists(ctx, input.CustomerID)
	if err != nil {
		return Output{}, err
	}
	if !exists {
		uc.Logger.Warn(ctx, "order references unknown customer",
			logger.String("customer_id", input.CustomerID))
		return Output{}, fmt.Errorf("id %s: %w", input.CustomerID, entity.ErrCustomerNotFound)
	}

	// Duplicate product references in one request are merged for the stock
	// check, while the original lines keep their multiplicity below.
	productIDs := make([]string, 0, len(input.Items))
	required := make(map[string]int, len(input.Items))
	for _, line := range input.Items {
		if _, seen := required[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		required[line.ProductID] += line.Quantity
	}

	fetched, err := uow.Products().FindByIDs(ctx, productIDs)
	if err != nil {
		return Output{}, err
	}
	products := make(map[string]*entity.Product, len(fetched))
	for _, p := range fetched {
		products[p.ID()] = p
	}

	for _, id := range productIDs {
		product, ok := products[id]
		if !ok {
			uc.Logger.Warn(ctx, "order references unknown product", logger.String("product_id", id))
			return Output{}, fmt.Errorf("id %s: %w", id, entity.ErrProductNotFound)
		}
		if product.Stock() < required[id] {
			uc.Logger.Warn(ctx, "insufficient stock for order",
				logger.String("product_id", id),
				logger.Int("available", product.Stock()),
				logger.Int("requested", required[id]),
			)
			return Output{}, fmt.Errorf("%w: product %q available %d, requested %d",
				entity.ErrInsufficientStock, product.Name(), product.Stock(), required[id])
		}
	}

	// Everything validated; open the transaction and apply the mutations.
	if err := uow.Begin(ctx); err != nil {
		return Output{}, err
	}

	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product := products[line.ProductID]

		if err := product.ReduceStock(line.Quantity); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		if err := uow.Products().Update(ctx, product); err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}

		item, err := entity.NewOrderItem(product.ID(), line.Quantity, product.Price())
		if err != nil {
			return Output{}, rollbackOn(ctx, uow, err)
		}
		items = append(items, item)
	}

	newOrder, err := entity.NewOrder(input.CustomerID, items)
	if err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}
	if err := uow.Orders().Insert(ctx, newOrder); err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}

	if err := uc.saveCreatedEvent(ctx, uow, newOrder); err != nil {
		return Output{}, rollbackOn(ctx, uow, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return Output{}, err
	}
	invalidateProducts(ctx, uc.Cache, uc.Logger, productIDs)

	uc.Logger.Info(ctx, "order created",
		logger.String("order_id", newOrder.ID()),
		logger.String("total", newOrder.Total().String()),
	)
	return toOutput(newOrder), nil
}

func (uc *CreateUseCaseImpl) saveCreatedEvent(ctx context.Context, uow outbound.UnitOfWork, o *entity.Order) error {
	eventItems := make([]CreatedEventItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		eventItems = append(eventItems, CreatedEventItem{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}
	payload, err := json.Marshal(CreatedEventPayload{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
		Items:      eventItems,
	})
	if err != nil {
		return err
	}
	return uow.Orders().SaveOutboxEvent(ctx, uuid.NewString(), o.ID(), EventOrderCreated, payload, TopicOrderCreated)
}
