// Package promotion holds the discount catalog: promotion definitions, their
// validity windows and the rules for matching a code against an order.
package promotion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// ConditionOrder makes a promotion apply to any order.
const ConditionOrder = "ORDER"

// ToppingPrefix starts a condition that requires a topping.
const ToppingPrefix = "TOPPING:"

// ToppingCondition returns the condition requiring the named topping.
func ToppingCondition(topping string) string {
	return ToppingPrefix + topping
}

// OrderConditions returns the condition strings an order with the given
// toppings can satisfy, most specific first. An order without toppings only
// satisfies ConditionOrder.
func OrderConditions(toppings []string) []string {
	if len(toppings) == 0 {
		return []string{ConditionOrder}
	}
	conditions := make([]string, 0, len(toppings))
	for _, t := range toppings {
		conditions = append(conditions, ToppingCondition(t))
	}
	return conditions
}

// DisplayCondition renders the single condition label for an order.
func DisplayCondition(toppings []string) string {
	if len(toppings) == 0 {
		return ConditionOrder
	}
	return ToppingPrefix + strings.Join(toppings, ",")
}

// Promotion is a discount rule. Start and End are inclusive calendar days;
// a zero value means unbounded.
type Promotion struct {
	Code      string          `json:"code" yaml:"code"`
	Name      string          `json:"name" yaml:"name"`
	Discount  decimal.Decimal `json:"discount" yaml:"discount"`
	Active    bool            `json:"active" yaml:"active"`
	Start     time.Time       `json:"start,omitempty" yaml:"start,omitempty"`
	End       time.Time       `json:"end,omitempty" yaml:"end,omitempty"`
	Condition string          `json:"condition" yaml:"condition"`
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar day in t's own location.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// IsActiveOn reports whether the promotion applies on the given day.
func (p Promotion) IsActiveOn(t time.Time) bool {
	if !p.Active {
		return false
	}
	day := Day(t)
	if !p.Start.IsZero() && day.Before(Day(p.Start)) {
		return false
	}
	if !p.End.IsZero() && day.After(Day(p.End)) {
		return false
	}
	return true
}

// Matches reports whether the promotion's code equals code and its condition
// accepts condition. Both comparisons ignore case.
func (p Promotion) Matches(code, condition string) bool {
	if !strings.EqualFold(p.Code, code) {
		return false
	}
	return strings.EqualFold(p.Condition, ConditionOrder) || strings.EqualFold(p.Condition, condition)
}

// Validate checks the fields an operator supplies.
func (p Promotion) Validate() error {
	if err := pizzeria.RequireNotBlank(strings.TrimSpace(p.Code), ErrMsgCodeRequired); err != nil {
		return err
	}
	if err := pizzeria.RequireNonNegativeAmount(p.Discount, ErrMsgDiscountNegative); err != nil {
		return err
	}
	if !p.Start.IsZero() && !p.End.IsZero() && Day(p.End).Before(Day(p.Start)) {
		return pizzeria.NewInvalidArgument(ErrMsgDatesReversed)
	}
	if !validCondition(p.Condition) {
		return pizzeria.NewInvalidArgumentf("%s: %q", ErrMsgConditionInvalid, p.Condition)
	}
	return nil
}

func validCondition(c string) bool {
	if strings.EqualFold(c, ConditionOrder) {
		return true
	}
	if len(c) <= len(ToppingPrefix) {
		return false
	}
	return strings.EqualFold(c[:len(ToppingPrefix)], ToppingPrefix)
}

// DefaultPromotions returns the catalog seeded into empty storage.
func DefaultPromotions() []Promotion {
	return []Promotion{
		{
			Code:      "HOLIDAY10",
			Name:      "Holiday Special - $10 Off",
			Discount:  decimal.NewFromInt(10),
			Active:    true,
			Start:     Date(2024, time.December, 1),
			End:       Date(2024, time.December, 31),
			Condition: ConditionOrder,
		},
		{
			Code:      "SUMMER15",
			Name:      "Summer Deal - $15 Off",
			Discount:  decimal.NewFromInt(15),
			Active:    true,
			Start:     Date(2024, time.June, 1),
			End:       Date(2024, time.June, 30),
			Condition: ToppingCondition("Pineapple"),
		},
		{
			Code:      "WELCOME5",
			Name:      "Welcome Offer - $5 Off",
			Discount:  decimal.NewFromInt(5),
			Active:    true,
			Condition: ConditionOrder,
		},
	}
}
