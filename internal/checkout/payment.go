package checkout

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// PaymentMethod charges the customer.
type PaymentMethod interface {
	Process(ctx context.Context, amount decimal.Decimal) error
	Type() string
}

// CreditCard, DigitalWallet and Cash accept every charge. Real processors
// plug in through PaymentMethod.
type (
	CreditCard    struct{}
	DigitalWallet struct{}
	Cash          struct{}
)

func (CreditCard) Process(ctx context.Context, _ decimal.Decimal) error    { return ctx.Err() }
func (CreditCard) Type() string                                            { return "Credit Card" }
func (DigitalWallet) Process(ctx context.Context, _ decimal.Decimal) error { return ctx.Err() }
func (DigitalWallet) Type() string                                         { return "Digital Wallet" }
func (Cash) Process(ctx context.Context, _ decimal.Decimal) error          { return ctx.Err() }
func (Cash) Type() string                                                  { return "Cash" }

// ParsePaymentMethod maps a method name to its processor. Spaces, dashes and
// case are ignored.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	switch key {
	case "creditcard", "card":
		return CreditCard{}, nil
	case "digitalwallet", "wallet":
		return DigitalWallet{}, nil
	case "cash":
		return Cash{}, nil
	}
	return nil, pizzeria.NewInvalidArgumentf("%s: %q", ErrMsgUnknownPayment, name)
}
