package services

import (
	"errors"
	"fmt"
)

// Validation-class checkout and wallet errors. All are detected before any
// mutation and are safe to retry once the condition is corrected.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrAddressNotOwned   = errors.New("shipping address does not belong to buyer")
	ErrInvalidAmount     = errors.New("invalid top-up amount")
	ErrSelfDelete        = errors.New("cannot delete your own account")
)

// ErrTransactionAborted covers storage failures and races lost at commit
// time. The caller sees a generic failure and may re-submit the whole
// placement; the cart and stock are re-validated on retry.
var ErrTransactionAborted = errors.New("order placement aborted")

// InsufficientStockError reports a cart line whose requested quantity
// exceeds the product's live stock.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)",
		e.ProductID, e.Requested, e.Available)
}
