package promotion

// Error message constants for the promotion catalog.
const (
	ErrMsgCodeRequired     = "Promotion code is required"
	ErrMsgDiscountNegative = "Discount must not be negative"
	ErrMsgCodeExists       = "Promotion code already exists"
	ErrMsgDatesReversed    = "Promotion end date is before its start date"
	ErrMsgConditionInvalid = "Condition must be ORDER or TOPPING:<name>"
	ErrMsgNoSuchPromotion  = "No valid promotion for code"
)
