package order

import "errors"

var (
	ErrValidation         = errors.New("missing required fields: customer name, phone, or items")
	ErrStatusRequired     = errors.New("orderStatus is required")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStoreNotConfigured = errors.New("order store not configured")
)
