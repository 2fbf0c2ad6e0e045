package order

import (
	"time"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Input

type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateInput struct {
	CustomerID string      `json:"customer_id"`
	Items      []ItemInput `json:"items"`
}

type UpdateInput struct {
	Items []ItemInput `json:"items"`
}

// Output

type ItemOutput struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Output struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	OrderDate  time.Time       `json:"order_date"`
	Total      decimal.Decimal `json:"total"`
	Items      []ItemOutput    `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type DetailsItemOutput struct {
	ItemOutput
	ProductName string `json:"product_name,omitempty"`
}

type DetailsOutput struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	OrderDate     time.Time           `json:"order_date"`
	Total         decimal.Decimal     `json:"total"`
	Items         []DetailsItemOutput `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func toOutput(o *entity.Order) Output {
	items := make([]ItemOutput, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemOutput{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}
	return Output{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		OrderDate:  o.OrderDate(),
		Total:      o.Total(),
		Items:      items,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func toOutputs(orders []*entity.Order) []Output {
	out := make([]Output, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOutput(o))
	}
	return out
}

func toDetailsOutputs(details []*outbound.OrderDetails) []DetailsOutput {
	out := make([]DetailsOutput, 0, len(details))
	for _, d := range details {
		out = append(out, toDetailsOutput(d))
	}
	return out
}

func toDetailsOutput(d *outbound.OrderDetails) DetailsOutput {
	o := d.Order
	items := make([]DetailsItemOutput, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, DetailsItemOutput{
			ItemOutput: ItemOutput{
				ID:        item.ID(),
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice(),
				Subtotal:  item.Subtotal(),
			},
			ProductName: d.ProductNames[item.ProductID()],
		})
	}
	return DetailsOutput{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		OrderDate:     o.OrderDate(),
		Total:         o.Total(),
		Items:         items,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}
