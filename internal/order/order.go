// Package order holds the order aggregate and its fulfillment lifecycle.
package order

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/notify"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
)

// PromotionValidator resolves a promotion code for an order condition.
// *promotion.Catalog satisfies it.
type PromotionValidator interface {
	ValidatePromoCode(code, condition string) (promotion.Promotion, error)
}

// Snapshot is the order state handed to observers.
type Snapshot struct {
	ID        string
	Status    Status
	Direction Direction
	// Moved is false when the transition attempt hit either end of the lifecycle.
	Moved     bool
	Total     decimal.Decimal
	PromoCode string
	At        time.Time
}

// Observer receives a snapshot after every transition attempt.
type Observer = notify.Observer[Snapshot]

// Params are the inputs to New.
type Params struct {
	ID         string
	Date       time.Time
	Total      decimal.Decimal
	Product    product.Item
	Delivery   DeliveryOption
	Address    string
	Promotions PromotionValidator
}

// Order is a customer's purchase. Status changes only through NextState and
// PrevState.
type Order struct {
	mu sync.Mutex

	id         string
	date       time.Time
	item       product.Item
	delivery   DeliveryOption
	address    string
	promotions PromotionValidator

	subtotal    decimal.Decimal
	adjustments decimal.Decimal
	promotion   *promotion.Promotion

	status   Status
	rating   int
	feedback string

	observers notify.Hub[Snapshot]
}

// New validates p and returns an order in StatusOrderPlaced. An empty ID is
// replaced by a generated one and a zero Date by the current time.
func New(p Params) (*Order, error) {
	if p.Product == nil {
		return nil, pizzeria.NewInvalidArgument(ErrMsgProductRequired)
	}
	if err := pizzeria.RequireNonNegativeAmount(p.Total, ErrMsgTotalNegative); err != nil {
		return nil, err
	}
	address := strings.TrimSpace(p.Address)
	switch p.Delivery {
	case Delivery:
		if err := pizzeria.RequireNotBlank(address, ErrMsgAddressRequired); err != nil {
			return nil, err
		}
	case Pickup:
		if address != "" {
			return nil, pizzeria.NewInvalidArgument(ErrMsgAddressNotAllowed)
		}
	default:
		return nil, pizzeria.NewInvalidArgument(ErrMsgUnknownDelivery)
	}

	id := p.ID
	if id == "" {
		id = pizzeria.NewOrderID()
	}
	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	return &Order{
		id:         id,
		date:       date,
		item:       p.Product,
		delivery:   p.Delivery,
		address:    address,
		promotions: p.Promotions,
		subtotal:   p.Total,
		status:     StatusOrderPlaced,
	}, nil
}

func (o *Order) ID() string                { return o.id }
func (o *Order) Date() time.Time           { return o.date }
func (o *Order) Product() product.Item     { return o.item }
func (o *Order) Delivery() DeliveryOption  { return o.delivery }
func (o *Order) Address() string           { return o.address }
func (o *Order) Subtotal() decimal.Decimal { return o.subtotal }

// Total is the amount due: the subtotal less direct discounts and the
// applied promotion, never below zero.
func (o *Order) Total() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.totalLocked()
}

// totalLocked must be called with mu held.
func (o *Order) totalLocked() decimal.Decimal {
	total := o.subtotal.Sub(o.adjustments)
	if o.promotion != nil {
		total = total.Sub(o.promotion.Discount)
	}
	return pizzeria.FloorZero(total)
}

// Condition is the promotion condition label for this order's toppings.
func (o *Order) Condition() string {
	return promotion.DisplayCondition(o.item.Toppings())
}

// ApplyPromotion validates code against the order's toppings and records the
// promotion. A later promotion replaces the earlier one, so the total only
// ever reflects the latest promotion's discount.
func (o *Order) ApplyPromotion(code string) error {
	if err := pizzeria.RequireNotBlank(strings.TrimSpace(code), ErrMsgPromoCodeRequired); err != nil {
		return err
	}
	if o.promotions == nil {
		return pizzeria.NewFailedPrecondition(ErrMsgNoPromotionCatalog)
	}

	var lastErr error
	for _, condition := range promotion.OrderConditions(o.item.Toppings()) {
		p, err := o.promotions.ValidatePromoCode(code, condition)
		if err != nil {
			lastErr = err
			continue
		}
		o.mu.Lock()
		o.promotion = &p
		o.mu.Unlock()
		return nil
	}
	return lastErr
}

// Promotion returns the applied promotion, if any.
func (o *Order) Promotion() (promotion.Promotion, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.promotion == nil {
		return promotion.Promotion{}, false
	}
	return *o.promotion, true
}

// ApplyDiscount lowers the total by amount. Loyalty redemptions go through
// here too.
func (o *Order) ApplyDiscount(amount decimal.Decimal) error {
	if err := pizzeria.RequireNonNegativeAmount(amount, ErrMsgDiscountNegative); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.adjustments = o.adjustments.Add(amount)
	return nil
}

// SetRating records a 1 to 5 rating.
func (o *Order) SetRating(rating int) error {
	if err := pizzeria.RequireInRange(rating, 1, 5, ErrMsgRatingRange); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rating = rating
	return nil
}

// Rating returns 0 until a rating is set.
func (o *Order) Rating() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rating
}

func (o *Order) SetFeedback(feedback string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.feedback = feedback
}

func (o *Order) Feedback() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.feedback
}

// AddObserver registers obs. Registering twice has no effect.
func (o *Order) AddObserver(obs Observer) {
	o.observers.Add(obs)
}

// RemoveObserver unregisters obs; unknown observers are ignored.
func (o *Order) RemoveObserver(obs Observer) {
	o.observers.Remove(obs)
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// CurrentStatus returns the current stage's label.
func (o *Order) CurrentStatus() string {
	return o.Status().Label()
}

// NextState advances the lifecycle. It reports false when the order was
// already delivered. Observers are notified once either way.
func (o *Order) NextState() bool {
	return o.move(Forward)
}

// PrevState steps the lifecycle back. It reports false when the order was
// already at its initial stage. Observers are notified once either way.
func (o *Order) PrevState() bool {
	return o.move(Backward)
}

func (o *Order) move(d Direction) bool {
	o.mu.Lock()
	next, moved := Transition(o.status, d)
	o.status = next
	snap := o.snapshotLocked()
	snap.Direction = d
	snap.Moved = moved
	o.mu.Unlock()

	o.observers.Publish(snap)
	return moved
}

// Snapshot returns the current state as an observer would see it.
func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Order) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:     o.id,
		Status: o.status,
		Total:  o.totalLocked(),
		At:     time.Now(),
	}
	if o.promotion != nil {
		s.PromoCode = o.promotion.Code
	}
	return s
}
