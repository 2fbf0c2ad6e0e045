package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	//Arrange
	price := decimal.NewFromFloat(19.90)

	//Act
	product, err := NewProduct("Keyboard", price, "mechanical", 10)

	//Assert
	assert.Nil(t, err)
	assert.NotNil(t, product)
	assert.NotEmpty(t, product.ID())
	assert.True(t, price.Equal(product.Price()))
	assert.Equal(t, 10, product.Stock())
}

func TestNewProduct_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       decimal.Decimal
		stock       int
		expectedErr error
	}{
		{"Should return error when name is empty", "", decimal.NewFromInt(10), 5, ErrNameIsRequired},
		{"Should return error when name is blank", "   ", decimal.NewFromInt(10), 5, ErrNameIsRequired},
		{"Should return error when price is zero", "Keyboard", decimal.Zero, 5, ErrPriceMustBePos},
		{"Should return error when price is negative", "Keyboard", decimal.NewFromInt(-1), 5, ErrPriceMustBePos},
		{"Should return error when stock is negative", "Keyboard", decimal.NewFromInt(10), -1, ErrStockMustBePos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, tt.price, "", tt.stock)

			assert.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, product)
		})
	}
}

func TestProduct_ReduceStock(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 5)

	err := product.ReduceStock(3)

	assert.Nil(t, err)
	assert.Equal(t, 2, product.Stock())
}

func TestProduct_ReduceStock_Insufficient(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	err := product.ReduceStock(4)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.ErrorIs(t, err, ErrConflict)
	// no partial decrement
	assert.Equal(t, 3, product.Stock())
}

func TestProduct_ReduceStock_InvalidQuantity(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	for _, qty := range []int{0, -1} {
		err := product.ReduceStock(qty)
		assert.ErrorIs(t, err, ErrQuantityMustBePos)
	}
	assert.Equal(t, 3, product.Stock())
}

func TestProduct_IncreaseStock(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	err := product.IncreaseStock(7)

	assert.Nil(t, err)
	assert.Equal(t, 10, product.Stock())
}

func TestProduct_IncreaseStock_InvalidQuantity(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	err := product.IncreaseStock(0)

	assert.ErrorIs(t, err, ErrQuantityMustBePos)
	assert.Equal(t, 3, product.Stock())
}

func TestProduct_Update(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	err := product.Update("Mouse", decimal.NewFromFloat(5.50), "wireless", 8)

	assert.Nil(t, err)
	assert.Equal(t, "Mouse", product.Name())
	assert.Equal(t, "wireless", product.Description())
	assert.Equal(t, 8, product.Stock())
	assert.True(t, decimal.NewFromFloat(5.50).Equal(product.Price()))
}

func TestProduct_Update_RejectsInvalidData(t *testing.T) {
	product, _ := NewProduct("Keyboard", decimal.NewFromInt(10), "", 3)

	err := product.Update("", decimal.NewFromInt(10), "", 3)

	assert.ErrorIs(t, err, ErrNameIsRequired)
	// all fields untouched on failure
	assert.Equal(t, "Keyboard", product.Name())
	assert.Equal(t, 3, product.Stock())
}
