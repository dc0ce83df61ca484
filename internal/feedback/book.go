// Package feedback collects customer ratings and comments per order.
package feedback

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Entry is one customer's feedback on an order.
type Entry struct {
	OrderID     string
	ProductName string
	Rating      int
	Comments    string
	At          time.Time
}

// Book keeps feedback in submission order.
type Book struct {
	mu      sync.Mutex
	entries []Entry
}

func NewBook() *Book {
	return &Book{}
}

// Add records e after checking its order id and rating.
func (b *Book) Add(e Entry) error {
	if err := pizzeria.RequireNotBlank(strings.TrimSpace(e.OrderID), "Order ID is required"); err != nil {
		return err
	}
	if err := pizzeria.RequireInRange(e.Rating, 1, 5, "Rating must be between 1 and 5"); err != nil {
		return err
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	return nil
}

// All returns every entry in submission order.
func (b *Book) All() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// ForOrder returns the entries left on one order.
func (b *Book) ForOrder(orderID string) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Entry
	for _, e := range b.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out
}

// AverageRating returns the mean rating, or 0 with no entries.
func (b *Book) AverageRating() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range b.entries {
		sum += e.Rating
	}
	return float64(sum) / float64(len(b.entries))
}
