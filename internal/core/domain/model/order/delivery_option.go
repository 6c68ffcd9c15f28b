package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// DeliveryOption selects which status sequence variant an order follows.
type DeliveryOption int

const (
	// DeliveryOptionUnknown represents an invalid or undefined option.
	DeliveryOptionUnknown DeliveryOption = iota

	// Pickup orders are collected at the bakery and finish as Completed.
	Pickup

	// Delivery orders are driven out and finish as Delivered.
	Delivery
)

func getDeliveryOptionStrings() map[DeliveryOption]string {
	return map[DeliveryOption]string{
		DeliveryOptionUnknown: "unknown",
		Pickup:                "pickup",
		Delivery:              "delivery",
	}
}

func getValidDeliveryOptionStrings() map[DeliveryOption]string {
	//nolint:exhaustive // DeliveryOptionUnknown is intentionally excluded as it's invalid
	return map[DeliveryOption]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// DeliveryOptionFromString parses the persisted/wire form of a delivery option.
func DeliveryOptionFromString(s string) (DeliveryOption, error) {
	for opt, name := range getValidDeliveryOptionStrings() {
		if name == s {
			return opt, nil
		}
	}
	return DeliveryOptionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery option is invalid",
		fmt.Errorf("%q is not a valid delivery option", s),
	)
}

// Validate checks that the DeliveryOption is one of the defined variants.
func (d DeliveryOption) Validate() error {
	if _, ok := getValidDeliveryOptionStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery option is invalid",
			fmt.Errorf("%d is not a valid delivery option", d),
		)
	}
	return nil
}

// String returns the persisted/wire name of the delivery option.
func (d DeliveryOption) String() string {
	if str, ok := getDeliveryOptionStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Sequence returns the canonical forward status path for the variant,
// excluding the cancelled side branch. An empty slice is returned for an
// invalid option.
func (d DeliveryOption) Sequence() []Status {
	switch d {
	case Pickup:
		return []Status{Pending, Confirmed, InProgress, Ready, Completed}
	case Delivery:
		return []Status{Pending, Confirmed, InProgress, Ready, OutForDelivery, Delivered}
	default:
		return nil
	}
}
