package product

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuild_unsetFieldsDefaultToEmpty(t *testing.T) {
	p := NewBuilder().Build()

	if p.Name() != "" || p.Crust() != "" || p.Sauce() != "" || p.Cheese() != "" {
		t.Errorf("expected empty strings, got %q %q %q %q", p.Name(), p.Crust(), p.Sauce(), p.Cheese())
	}
	if p.Size() != SizeUnset {
		t.Errorf("expected unset size, got %v", p.Size())
	}
	if !p.Price().IsZero() {
		t.Errorf("expected zero price, got %s", p.Price())
	}
	if len(p.Toppings()) != 0 {
		t.Errorf("expected no toppings, got %v", p.Toppings())
	}
}

func TestBuild_settersInAnyOrder(t *testing.T) {
	p := NewBuilder().
		Price(dec("12.50")).
		Toppings("Olives", "Onion").
		Size(SizeMedium).
		Crust("Thin").
		Name("Custom").
		Build()

	if p.Name() != "Custom" || p.Crust() != "Thin" || p.Size() != SizeMedium {
		t.Errorf("unexpected product: %q %q %v", p.Name(), p.Crust(), p.Size())
	}
	if !p.Price().Equal(dec("12.50")) {
		t.Errorf("expected 12.50, got %s", p.Price())
	}
	if got := p.Toppings(); len(got) != 2 || got[0] != "Olives" || got[1] != "Onion" {
		t.Errorf("expected [Olives Onion], got %v", got)
	}
}

func TestBuild_productIsImmutable(t *testing.T) {
	b := NewBuilder().Name("First").Toppings("Olives")
	p := b.Build()

	b.Name("Second").Toppings("Ham")
	p.Toppings()[0] = "Mutated"

	if p.Name() != "First" {
		t.Errorf("expected name to stay First, got %q", p.Name())
	}
	if p.Toppings()[0] != "Olives" {
		t.Errorf("expected topping to stay Olives, got %q", p.Toppings()[0])
	}
}

func TestToppings_dropsDuplicates(t *testing.T) {
	p := NewBuilder().Toppings("Olives", "Ham", "Olives", "").Build()

	if got := p.Toppings(); len(got) != 2 {
		t.Errorf("expected 2 toppings, got %v", got)
	}
	if !HasTopping(p, "Ham") || HasTopping(p, "Pineapple") {
		t.Error("HasTopping disagrees with the topping list")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"Small", SizeSmall, false},
		{"medium", SizeMedium, false},
		{" LARGE ", SizeLarge, false},
		{"", SizeUnset, false},
		{"Huge", SizeUnset, true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
