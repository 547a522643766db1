package order

import (
	"fmt"

	"starburger/internal/pkg/errs"
)

// Payment represents the payment method chosen at order registration.
type Payment int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown Payment = iota

	// Cash means the order is paid in cash on delivery.
	Cash

	// Electronic means the order is paid electronically.
	Electronic
)

func getPaymentStrings() map[Payment]string {
	return map[Payment]string{
		PaymentUnknown: "Unknown",
		Cash:           "Cash",
		Electronic:     "Electronic",
	}
}

// Validate checks that the Payment holds one of the defined methods.
func (p Payment) Validate() error {
	if p != Cash && p != Electronic {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment is invalid", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (p Payment) String() string {
	if str, ok := getPaymentStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
