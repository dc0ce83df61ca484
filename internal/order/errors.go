package order

// Error message constants for the order domain.
const (
	ErrMsgProductRequired    = "Order must have a product"
	ErrMsgTotalNegative      = "Order total must not be negative"
	ErrMsgAddressRequired    = "Delivery address is required for delivery orders"
	ErrMsgAddressNotAllowed  = "Pickup orders take no delivery address"
	ErrMsgUnknownDelivery    = "Unknown delivery option"
	ErrMsgDiscountNegative   = "Discount must not be negative"
	ErrMsgRatingRange        = "Rating must be between 1 and 5"
	ErrMsgPromoCodeRequired  = "Promotion code is required"
	ErrMsgNoPromotionCatalog = "Order has no promotion catalog"
)
