package product

// Error message constants for product validation.
const (
	ErrMsgCrustRequired    = "Crust must be selected"
	ErrMsgSizeRequired     = "Size must be selected"
	ErrMsgToppingsRequired = "At least one topping is required"
	ErrMsgUnknownSize      = "Unknown size"
)
