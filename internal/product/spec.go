package product

import (
	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Spec is the storable shape of an item. Price is the undecorated price;
// Features are re-applied on restore.
type Spec struct {
	Name     string   `json:"name" yaml:"name"`
	Crust    string   `json:"crust,omitempty" yaml:"crust,omitempty"`
	Sauce    string   `json:"sauce,omitempty" yaml:"sauce,omitempty"`
	Cheese   string   `json:"cheese,omitempty" yaml:"cheese,omitempty"`
	Toppings []string `json:"toppings,omitempty" yaml:"toppings,omitempty"`
	Size     Size     `json:"size,omitempty" yaml:"size,omitempty"`
	Price    string   `json:"price" yaml:"price"`
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// ToSpec flattens item into a Spec.
func ToSpec(item Item) Spec {
	base := item
	for {
		w, ok := base.(*Wrapped)
		if !ok {
			break
		}
		base = w.inner
	}
	return Spec{
		Name:     base.Name(),
		Crust:    item.Crust(),
		Sauce:    item.Sauce(),
		Cheese:   item.Cheese(),
		Toppings: item.Toppings(),
		Size:     item.Size(),
		Price:    base.Price().String(),
		Features: item.Features(),
	}
}

// FromSpec rebuilds the item described by s.
func FromSpec(s Spec) (Item, error) {
	price := decimal.Zero
	if s.Price != "" {
		p, err := decimal.NewFromString(s.Price)
		if err != nil {
			return nil, pizzeria.NewInvalidArgumentf("invalid price %q", s.Price)
		}
		price = p
	}
	var item Item = NewBuilder().
		Name(s.Name).
		Crust(s.Crust).
		Sauce(s.Sauce).
		Cheese(s.Cheese).
		Toppings(s.Toppings...).
		Size(s.Size).
		Price(price).
		Build()
	for _, label := range s.Features {
		f, ok := LookupFeature(label)
		if !ok {
			return nil, pizzeria.NewInvalidArgumentf("unknown feature %q", label)
		}
		item = Wrap(item, f)
	}
	return item, nil
}
