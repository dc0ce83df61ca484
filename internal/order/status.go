package order

// Status is an order's fulfillment stage.
type Status int

const (
	StatusOrderPlaced Status = iota
	StatusInPreparation
	StatusOutForDelivery
	StatusDelivered
)

// Direction selects a transition.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Transition returns the status reached from s in direction d, and whether
// the status changed. Moving forward from Delivered or backward from
// OrderPlaced leaves the status unchanged.
func Transition(s Status, d Direction) (Status, bool) {
	switch d {
	case Forward:
		if s < StatusDelivered {
			return s + 1, true
		}
	case Backward:
		if s > StatusOrderPlaced {
			return s - 1, true
		}
	}
	return s, false
}

// Label is the human-readable status shown to customers.
func (s Status) Label() string {
	switch s {
	case StatusOrderPlaced:
		return "Order Placed"
	case StatusInPreparation:
		return "In Preparation"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Code is the machine-readable status name.
func (s Status) Code() string {
	switch s {
	case StatusOrderPlaced:
		return "ORDER_PLACED"
	case StatusInPreparation:
		return "IN_PREPARATION"
	case StatusOutForDelivery:
		return "OUT_FOR_DELIVERY"
	case StatusDelivered:
		return "DELIVERED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) String() string {
	return s.Label()
}

// IsInitial reports whether s is the first stage.
func (s Status) IsInitial() bool {
	return s == StatusOrderPlaced
}

// IsDelivered reports whether s is the final forward stage.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}
