package entity

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so callers
// can classify failures without matching on messages.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrNameIsRequired    = fmt.Errorf("%w: name is required", ErrInvalidArgument)
	ErrPriceMustBePos    = fmt.Errorf("%w: price must be greater than zero", ErrInvalidArgument)
	ErrStockMustBePos    = fmt.Errorf("%w: stock cannot be negative", ErrInvalidArgument)
	ErrQuantityMustBePos = fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidArgument)
	ErrEmailIsRequired   = fmt.Errorf("%w: email is required", ErrInvalidArgument)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email format", ErrInvalidArgument)
	ErrOrderNeedsItems   = fmt.Errorf("%w: order must contain at least one item", ErrInvalidArgument)

	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("order item %w", ErrNotFound)

	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrConflict)
	ErrEmailInUse        = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrLastItem          = fmt.Errorf("%w: cannot remove the last order item", ErrConflict)
)

func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
