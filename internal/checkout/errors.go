package checkout

// Error message constants for checkout flows.
const (
	ErrMsgNotAuthenticated = "Please log in to continue"
	ErrMsgUnknownPayment   = "Unknown payment method"
	ErrMsgAlreadyPaid      = "Order is already paid"
	ErrMsgPaymentDeclined  = "Payment was declined"
)
