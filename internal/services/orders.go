package services

import "backend/internal/utils"

const orderRefLength = 10

// NewOrderRef mints a customer-facing order reference for payment
// initialization.
func NewOrderRef() string {
	return utils.GenerateOrderID(orderRefLength)
}
