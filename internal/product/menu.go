package product

import (
	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Menu prices a customized product from its size and topping count.
type Menu struct {
	SizePrices   map[Size]decimal.Decimal
	ToppingPrice decimal.Decimal
}

// DefaultMenu charges 10/15/20 by size and 1.50 per topping.
func DefaultMenu() Menu {
	return Menu{
		SizePrices: map[Size]decimal.Decimal{
			SizeSmall:  decimal.NewFromInt(10),
			SizeMedium: decimal.NewFromInt(15),
			SizeLarge:  decimal.NewFromInt(20),
		},
		ToppingPrice: decimal.RequireFromString("1.50"),
	}
}

// Price returns the base price for a size with n toppings.
func (m Menu) Price(size Size, toppings int) (decimal.Decimal, error) {
	base, ok := m.SizePrices[size]
	if !ok {
		return decimal.Zero, pizzeria.NewInvalidArgument(ErrMsgSizeRequired)
	}
	if err := pizzeria.RequireNonNegative(toppings, "Topping count must be non-negative"); err != nil {
		return decimal.Zero, err
	}
	return base.Add(m.ToppingPrice.Mul(decimal.NewFromInt(int64(toppings)))), nil
}

// Quote sets the builder's price from the menu and builds the product.
func (m Menu) Quote(b *Builder) (*Product, error) {
	price, err := m.Price(b.size, len(b.toppings))
	if err != nil {
		return nil, err
	}
	return b.Price(price).Build(), nil
}
