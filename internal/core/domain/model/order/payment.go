package order

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// PaymentMethod records how the customer intends to pay. The core records
// the choice at checkout; it never executes a payment.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCard is a card payment collected online.
	PaymentCard

	// PaymentEFTPOP is an electronic transfer with proof of payment.
	PaymentEFTPOP

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentWallet is the platform's prepaid wallet.
	PaymentWallet
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "UNKNOWN",
		PaymentCard:    "CARD",
		PaymentEFTPOP:  "EFT_POP",
		PaymentCash:    "CASH",
		PaymentWallet:  "WALLET",
	}
}

// PaymentMethodFromString parses a payment method from its wire
// representation, for example "EFT_POP". Returns an error for unknown names.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != PaymentUnknown {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod value is one of the supported methods.
func (p PaymentMethod) Validate() error {
	if p < PaymentCard || p > PaymentWallet {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the wire name of the payment method, e.g. "CASH".
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
