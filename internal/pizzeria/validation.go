package pizzeria

import "github.com/shopspring/decimal"

// RequireNotBlank checks that a field is non-empty.
func RequireNotBlank(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a count is zero or greater.
func RequireNonNegative(value int, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegativeAmount checks that a money amount is zero or greater.
func RequireNonNegativeAmount(value decimal.Decimal, errMsg string) *CommandError {
	if value.IsNegative() {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireInRange checks lo <= value <= hi.
func RequireInRange(value, lo, hi int, errMsg string) *CommandError {
	if value < lo || value > hi {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNotEmpty checks that a slice has at least one element.
func RequireNotEmpty[T any](items []T, errMsg string) *CommandError {
	if len(items) == 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// FloorZero clamps a money amount at zero.
func FloorZero(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
