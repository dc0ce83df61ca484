// Package loyalty tracks a customer's point balance.
package loyalty

import (
	"math"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Error message constants for the loyalty ledger.
const (
	ErrMsgPointsNegative = "Points must not be negative"
	ErrMsgPointsOverflow = "Points would exceed the maximum balance"
)

// PointsPerUnit is how many points make one currency unit, and how many
// currency units of spend earn one point.
const PointsPerUnit = 10

var pointsPerUnit = decimal.NewFromInt(PointsPerUnit)

// PointsEarned returns floor(total / 10) for a completed payment. Negative
// totals earn nothing.
func PointsEarned(total decimal.Decimal) int {
	if total.IsNegative() {
		return 0
	}
	return int(total.Div(pointsPerUnit).Floor().IntPart())
}

// PointsValue converts points to a currency amount.
func PointsValue(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Div(pointsPerUnit)
}

// PointsToCover returns the fewest points whose value covers amount.
func PointsToCover(amount decimal.Decimal) int {
	if !amount.IsPositive() {
		return 0
	}
	return int(amount.Mul(pointsPerUnit).Ceil().IntPart())
}

// Ledger is a point balance that never goes negative.
type Ledger struct {
	mu       sync.Mutex
	points   int
	lifetime int
}

// NewLedger opens a ledger with a starting balance.
func NewLedger(balance int) *Ledger {
	if balance < 0 {
		balance = 0
	}
	return &Ledger{points: balance}
}

// Points returns the current balance.
func (l *Ledger) Points() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points
}

// Lifetime returns the total points ever added. Redemptions do not reduce it.
func (l *Ledger) Lifetime() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lifetime
}

// Add credits n points and returns the new balance.
func (l *Ledger) Add(n int) (int, error) {
	if err := pizzeria.RequireNonNegative(n, ErrMsgPointsNegative); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > math.MaxInt-l.points || n > math.MaxInt-l.lifetime {
		return l.points, pizzeria.NewInvalidArgument(ErrMsgPointsOverflow)
	}
	l.points += n
	l.lifetime += n
	return l.points, nil
}

// Redeem debits n points and returns the new balance. The balance is left
// unchanged when it holds fewer than n points.
func (l *Ledger) Redeem(n int) (int, error) {
	if err := pizzeria.RequireNonNegative(n, ErrMsgPointsNegative); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > l.points {
		return l.points, pizzeria.NewFailedPreconditionf("Insufficient points: have %d, need %d", l.points, n)
	}
	l.points -= n
	return l.points, nil
}

// Refund returns previously redeemed points without counting them as
// earned.
func (l *Ledger) Refund(n int) error {
	if err := pizzeria.RequireNonNegative(n, ErrMsgPointsNegative); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > math.MaxInt-l.points {
		return pizzeria.NewInvalidArgument(ErrMsgPointsOverflow)
	}
	l.points += n
	return nil
}
