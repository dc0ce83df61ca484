package product

import (
	"github.com/shopspring/decimal"
)

// Feature is a paid add-on applied on top of an item.
type Feature struct {
	Label     string
	Surcharge decimal.Decimal
}

var (
	ExtraCheese      = Feature{Label: "Extra Cheese", Surcharge: decimal.RequireFromString("1.50")}
	SpecialPackaging = Feature{Label: "Special Packaging", Surcharge: decimal.RequireFromString("2.00")}
)

// Features known by label, used when restoring a saved product.
var knownFeatures = map[string]Feature{
	ExtraCheese.Label:      ExtraCheese,
	SpecialPackaging.Label: SpecialPackaging,
}

// LookupFeature returns the registered feature with the given label.
func LookupFeature(label string) (Feature, bool) {
	f, ok := knownFeatures[label]
	return f, ok
}

// Wrapped is an item view with one feature applied. Every field other than
// name and price is delegated to the inner item.
type Wrapped struct {
	inner   Item
	feature Feature
}

// Wrap applies features to item in order; the last feature is outermost.
func Wrap(item Item, features ...Feature) Item {
	for _, f := range features {
		item = &Wrapped{inner: item, feature: f}
	}
	return item
}

func (w *Wrapped) Name() string {
	return w.inner.Name() + " with " + w.feature.Label
}

func (w *Wrapped) Price() decimal.Decimal {
	return w.inner.Price().Add(w.feature.Surcharge)
}

func (w *Wrapped) Crust() string      { return w.inner.Crust() }
func (w *Wrapped) Sauce() string      { return w.inner.Sauce() }
func (w *Wrapped) Cheese() string     { return w.inner.Cheese() }
func (w *Wrapped) Toppings() []string { return w.inner.Toppings() }
func (w *Wrapped) Size() Size         { return w.inner.Size() }

func (w *Wrapped) Features() []string {
	return append(w.inner.Features(), w.feature.Label)
}

// Feature returns the feature applied by this layer.
func (w *Wrapped) Feature() Feature {
	return w.feature
}
