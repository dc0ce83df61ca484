package product

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Check is one link of a validation chain.
type Check struct {
	Name string
	Run  func(Item) *pizzeria.CommandError
}

// CheckCrust fails when no crust was chosen. A whitespace-only crust counts
// as none.
var CheckCrust = Check{Name: "crust", Run: func(item Item) *pizzeria.CommandError {
	return pizzeria.RequireNotBlank(strings.TrimSpace(item.Crust()), ErrMsgCrustRequired)
}}

// CheckSize fails when no size was chosen.
var CheckSize = Check{Name: "size", Run: func(item Item) *pizzeria.CommandError {
	if !item.Size().IsSet() {
		return pizzeria.NewInvalidArgument(ErrMsgSizeRequired)
	}
	return nil
}}

// CheckToppings fails when the topping list is empty.
var CheckToppings = Check{Name: "toppings", Run: func(item Item) *pizzeria.CommandError {
	return pizzeria.RequireNotEmpty(item.Toppings(), ErrMsgToppingsRequired)
}}

// Chain evaluates checks in order and stops at the first failure.
type Chain struct {
	checks []Check
	logger *zap.Logger
}

// NewChain builds a chain. A nil logger disables diagnostics.
func NewChain(logger *zap.Logger, checks ...Check) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{checks: checks, logger: logger}
}

// DefaultChain checks crust, then size, then toppings.
func DefaultChain(logger *zap.Logger) *Chain {
	return NewChain(logger, CheckCrust, CheckSize, CheckToppings)
}

// Validate returns nil when every check passes, otherwise the first failure.
func (c *Chain) Validate(item Item) error {
	for _, check := range c.checks {
		if err := check.Run(item); err != nil {
			c.logger.Debug("product check failed",
				zap.String("check", check.Name),
				zap.String("product", item.Name()),
				zap.String("reason", err.Message),
			)
			return err
		}
		c.logger.Debug("product check passed", zap.String("check", check.Name))
	}
	return nil
}

// Valid reports whether item passes the chain.
func (c *Chain) Valid(item Item) bool {
	return c.Validate(item) == nil
}
