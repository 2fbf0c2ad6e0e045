package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	id          string
	name        string
	price       decimal.Decimal
	description string
	stock       int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name string, price decimal.Decimal, description string, stock int) (*Product, error) {
	if err := validateProductData(name, price, stock); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Product{
		id:          uuid.NewString(),
		name:        name,
		price:       price,
		description: description,
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func RestoreProduct(id, name string, price decimal.Decimal, description string, stock int, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		price:       price,
		description: description,
		stock:       stock,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces all mutable fields at once. The fields are validated
// together so a partially valid update never lands.
func (p *Product) Update(name string, price decimal.Decimal, description string, stock int) error {
	if err := validateProductData(name, price, stock); err != nil {
		return err
	}

	p.name = name
	p.price = price
	p.description = description
	p.stock = stock
	p.updatedAt = time.Now().UTC()
	return nil
}

// ReduceStock reserves quantity units. The mutation is in-memory only;
// persisting the product is the caller's job.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityMustBePos
	}
	if p.stock < quantity {
		return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, p.stock, quantity)
	}
	p.stock -= quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// IncreaseStock reverses a previous reservation. There is no upper bound.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityMustBePos
	}
	p.stock += quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

func validateProductData(name string, price decimal.Decimal, stock int) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	if !price.IsPositive() {
		return ErrPriceMustBePos
	}
	if stock < 0 {
		return ErrStockMustBePos
	}
	return nil
}

func (p *Product) ID() string             { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Description() string    { return p.description }
func (p *Product) Stock() int             { return p.stock }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
