// Package product builds orderable products, decorates them with paid
// features and checks whether they can be ordered.
package product

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Item is the read contract shared by products and feature-wrapped views.
type Item interface {
	Name() string
	Crust() string
	Sauce() string
	Cheese() string
	// Toppings returns a copy in display order.
	Toppings() []string
	Size() Size
	Price() decimal.Decimal
	// Features lists applied feature labels, innermost first.
	Features() []string
}

// Product is an immutable snapshot produced by Builder.
type Product struct {
	name     string
	crust    string
	sauce    string
	cheese   string
	toppings []string
	size     Size
	price    decimal.Decimal
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Crust() string          { return p.crust }
func (p *Product) Sauce() string          { return p.sauce }
func (p *Product) Cheese() string         { return p.cheese }
func (p *Product) Toppings() []string     { return slices.Clone(p.toppings) }
func (p *Product) Size() Size             { return p.size }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Features() []string     { return nil }

// HasTopping reports whether item carries the named topping.
func HasTopping(item Item, name string) bool {
	return slices.Contains(item.Toppings(), name)
}

// Builder collects product fields in any order. It performs no validation.
type Builder struct {
	name     string
	crust    string
	sauce    string
	cheese   string
	toppings []string
	size     Size
	price    decimal.Decimal
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) Crust(crust string) *Builder {
	b.crust = crust
	return b
}

func (b *Builder) Sauce(sauce string) *Builder {
	b.sauce = sauce
	return b
}

func (b *Builder) Cheese(cheese string) *Builder {
	b.cheese = cheese
	return b
}

// Toppings replaces the topping list. Duplicates are dropped, keeping the
// first occurrence.
func (b *Builder) Toppings(toppings ...string) *Builder {
	b.toppings = b.toppings[:0:0]
	for _, t := range toppings {
		if t == "" || slices.Contains(b.toppings, t) {
			continue
		}
		b.toppings = append(b.toppings, t)
	}
	return b
}

func (b *Builder) Size(size Size) *Builder {
	b.size = size
	return b
}

func (b *Builder) Price(price decimal.Decimal) *Builder {
	b.price = price
	return b
}

// Build returns a fresh Product. Later builder calls do not affect it.
func (b *Builder) Build() *Product {
	return &Product{
		name:     b.name,
		crust:    b.crust,
		sauce:    b.sauce,
		cheese:   b.cheese,
		toppings: slices.Clone(b.toppings),
		size:     b.size,
		price:    b.price,
	}
}
