package product

import (
	"time"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Input

type CreateInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Stock       int             `json:"stock"`
}

type UpdateInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Stock       int             `json:"stock"`
}

// Output

type Output struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toOutput(p *entity.Product) Output {
	return Output{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
		Stock:       p.Stock(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
