package order

import (
	"strings"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// DeliveryOption is how the customer receives the order.
type DeliveryOption int

const (
	Pickup DeliveryOption = iota
	Delivery
)

func (d DeliveryOption) String() string {
	if d == Delivery {
		return "Delivery"
	}
	return "Pickup"
}

// ParseDeliveryOption accepts "pickup" or "delivery" in any case.
func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	}
	return Pickup, pizzeria.NewInvalidArgumentf("%s: %q", ErrMsgUnknownDelivery, s)
}
