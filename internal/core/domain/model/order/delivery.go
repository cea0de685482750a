package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
)

// Delivery holds where the order goes and how it is paid for.
type Delivery struct {
	address       string
	paymentMethod PaymentMethod
}

// NewDelivery validates the destination address and payment method.
// An empty payment method defaults to cash on delivery.
func NewDelivery(address string, method PaymentMethod) (Delivery, error) {
	if strings.TrimSpace(address) == "" {
		return Delivery{}, errs.NewValueIsRequiredError("address")
	}
	if method == "" {
		method = PaymentCashOnDelivery
	}
	if method != PaymentCashOnDelivery && method != PaymentCard {
		return Delivery{}, errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not a valid payment method", string(method)))
	}
	return Delivery{address: strings.TrimSpace(address), paymentMethod: method}, nil
}

func (d Delivery) Address() string {
	return d.address
}

func (d Delivery) PaymentMethod() PaymentMethod {
	return d.paymentMethod
}
